package domain

import "fmt"

// Analyzer output formats the gate knows how to parse.
const (
	FormatESLint  = "eslint"
	FormatGeneric = "generic"
)

// DefaultWarningThreshold tolerates no warnings until configured otherwise.
const DefaultWarningThreshold = 0

// GateConfig holds gate configuration loaded from .lintgate.yaml.
type GateConfig struct {
	// Files is the explicit ordered list of paths to check. When empty,
	// the CLI falls back to scanning the project for checkable files.
	Files []string `yaml:"files"             json:"files,omitempty"`

	// ExcludePaths are directory names skipped when scanning.
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`

	// WarningThreshold is the maximum number of static-analysis warnings
	// tolerated before the gate fails.
	WarningThreshold int `yaml:"warning_threshold" json:"warning_threshold"`

	// Analyzer configures the external static-analysis step.
	Analyzer AnalyzerConfig `yaml:"analyzer" json:"analyzer,omitempty"`
}

// AnalyzerConfig describes how to invoke the external linter and how to
// read its output. An empty Command disables the analysis step.
type AnalyzerConfig struct {
	Command []string `yaml:"command" json:"command,omitempty"`
	Format  string   `yaml:"format"  json:"format,omitempty"`
}

// DefaultConfig returns the configuration used when no .lintgate.yaml exists.
func DefaultConfig() GateConfig {
	return GateConfig{
		WarningThreshold: DefaultWarningThreshold,
		Analyzer:         AnalyzerConfig{Format: FormatGeneric},
	}
}

// Validate catches bad values in user-supplied raw config.
func (c GateConfig) Validate() error {
	if c.WarningThreshold < 0 {
		return fmt.Errorf("warning_threshold must be non-negative, got %d", c.WarningThreshold)
	}

	switch c.Analyzer.Format {
	case "", FormatESLint, FormatGeneric:
	default:
		return fmt.Errorf("unknown analyzer format %q (valid: %s, %s)",
			c.Analyzer.Format, FormatESLint, FormatGeneric)
	}

	if len(c.Analyzer.Command) > 0 && c.Analyzer.Command[0] == "" {
		return fmt.Errorf("analyzer command must not start with an empty string")
	}

	return nil
}
