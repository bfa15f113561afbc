package analyzer

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

// ExecAnalyzer implements domain.WarningAnalyzer by invoking an external
// linter command and parsing its text output. The gate never reimplements
// style analysis itself; it only consumes the reported counts.
type ExecAnalyzer struct {
	command []string
	format  string
}

// New creates an ExecAnalyzer from the analyzer section of the gate config.
func New(cfg domain.AnalyzerConfig) *ExecAnalyzer {
	format := cfg.Format
	if format == "" {
		format = domain.FormatGeneric
	}
	return &ExecAnalyzer{command: cfg.Command, format: format}
}

// Analyze runs the configured command with the file set appended as
// arguments, rooted at projectPath. A missing command disables the step.
// Linters conventionally exit non-zero when they find problems, so exit
// errors are not invocation failures; only an unrunnable command is.
func (a *ExecAnalyzer) Analyze(projectPath string, files []string) (*domain.AnalysisResult, error) {
	if len(a.command) == 0 {
		return &domain.AnalysisResult{}, nil
	}

	args := append(append([]string{}, a.command[1:]...), files...)
	cmd := exec.Command(a.command[0], args...)
	cmd.Dir = projectPath

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("invoking %s: %w", a.command[0], err)
		}
	}

	switch a.format {
	case domain.FormatESLint:
		return parseESLint(string(out)), nil
	default:
		return parseGeneric(string(out)), nil
	}
}

// UnattributedFile labels fatal errors the analyzer output did not tie
// to a specific file, so reports never show a blank path.
const UnattributedFile = "(analysis)"

// Disabled is a no-op analyzer for runs with analysis switched off.
type Disabled struct{}

func (Disabled) Analyze(string, []string) (*domain.AnalysisResult, error) {
	return &domain.AnalysisResult{}, nil
}

var (
	// "  12:4  error  Unexpected token  no-undef" (stylish formatter rows)
	eslintDiagRe = regexp.MustCompile(`^\s+(\d+):(\d+)\s+(error|warning)\s+(.+)$`)

	// "✖ 3 problems (1 error, 2 warnings)"
	eslintSummaryRe = regexp.MustCompile(`✖ (\d+) problems? \((\d+) errors?, (\d+) warnings?\)`)

	// "src/app.js:3:1: something happened"
	genericLocRe = regexp.MustCompile(`^([^\s:]+):\d+(?::\d+)?:?\s*(.*)$`)
)

// parseESLint reads eslint stylish output: a file-path header line followed
// by indented line:col rows, then a final summary.
func parseESLint(out string) *domain.AnalysisResult {
	result := &domain.AnalysisResult{}
	currentFile := ""
	sawRows := false

	for _, line := range strings.Split(out, "\n") {
		if m := eslintDiagRe.FindStringSubmatch(line); m != nil {
			sawRows = true
			if m[3] == "warning" {
				result.WarningCount++
				continue
			}
			file := currentFile
			if file == "" {
				file = UnattributedFile
			}
			msg := strings.TrimSpace(m[4])
			result.FatalErrors = append(result.FatalErrors, domain.FatalError{
				File:    file,
				Message: fmt.Sprintf("line %s:%s: %s", m[1], m[2], msg),
			})
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(trimmed, "✖") {
			currentFile = trimmed
		}
	}

	// Fall back to the summary when no per-row output was recognized
	// (some formatters emit the summary alone).
	if !sawRows {
		if m := eslintSummaryRe.FindStringSubmatch(out); m != nil {
			errCount, _ := strconv.Atoi(m[2])
			warnCount, _ := strconv.Atoi(m[3])
			result.WarningCount = warnCount
			for i := 0; i < errCount; i++ {
				result.FatalErrors = append(result.FatalErrors, domain.FatalError{
					File:    UnattributedFile,
					Message: "analysis reported an error (see linter output)",
				})
			}
		}
	}

	return result
}

// parseGeneric counts lines mentioning "warning" and treats lines
// mentioning "error" as fatal, attributing them to a leading
// path:line[:col] prefix when present.
func parseGeneric(out string) *domain.AnalysisResult {
	result := &domain.AnalysisResult{}

	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "error"):
			fe := domain.FatalError{File: UnattributedFile, Message: strings.TrimSpace(line)}
			if m := genericLocRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				fe.File = m[1]
				fe.Message = strings.TrimSpace(m[2])
			}
			result.FatalErrors = append(result.FatalErrors, fe)
		case strings.Contains(lower, "warning"):
			result.WarningCount++
		}
	}

	return result
}
