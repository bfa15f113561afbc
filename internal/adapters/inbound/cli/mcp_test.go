package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMCPCommand_Registered(t *testing.T) {
	cmd := NewRootCmdForTest()

	mcpCmd, _, err := cmd.Find([]string{"mcp", "serve"})
	assert.NoError(t, err)
	assert.Equal(t, "serve", mcpCmd.Name())
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "lintgate")
}
