package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLintGateMCPServer(t *testing.T) {
	s := NewLintGateMCPServer(".")

	assert.NotNil(t, s)
}
