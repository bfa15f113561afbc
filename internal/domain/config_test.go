package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultWarningThreshold, cfg.WarningThreshold)
	assert.Equal(t, FormatGeneric, cfg.Analyzer.Format)
	assert.Empty(t, cfg.Files)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeThreshold(t *testing.T) {
	cfg := GateConfig{WarningThreshold: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestValidate_UnknownAnalyzerFormat(t *testing.T) {
	cfg := GateConfig{Analyzer: AnalyzerConfig{Format: "checkstyle"}}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "checkstyle")
}

func TestValidate_EmptyAnalyzerFormatAllowed(t *testing.T) {
	cfg := GateConfig{WarningThreshold: 10}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyCommandHead(t *testing.T) {
	cfg := GateConfig{Analyzer: AnalyzerConfig{Command: []string{""}}}

	assert.Error(t, cfg.Validate())
}
