package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

// GateService runs the pre-merge validation gate: a per-file syntax check
// followed by an external static-analysis pass, merged into a single
// ValidationReport.
type GateService struct {
	checker  domain.SyntaxChecker
	analyzer domain.WarningAnalyzer
}

// NewGateService creates a GateService with all required dependencies.
func NewGateService(checker domain.SyntaxChecker, analyzer domain.WarningAnalyzer) *GateService {
	return &GateService{checker: checker, analyzer: analyzer}
}

// Run validates filePaths (relative to projectPath) in order and compares
// the measured warning count against warningThreshold.
//
// A file that fails to parse or does not exist is recorded as a failed
// result; the run never aborts early. An empty filePaths yields a vacuous
// pass with zero warnings and no analyzer invocation. The returned error
// is reserved for environmental failures (the analyzer could not be
// invoked at all), never for validation findings.
func (s *GateService) Run(projectPath string, filePaths []string, warningThreshold int) (*domain.ValidationReport, error) {
	if len(filePaths) == 0 {
		return domain.BuildReport([]domain.FileCheckResult{}, 0, warningThreshold), nil
	}

	results := make([]domain.FileCheckResult, 0, len(filePaths))
	for _, path := range filePaths {
		res := domain.FileCheckResult{Path: path, OK: true}
		if err := s.checker.CheckFile(filepath.Join(projectPath, path)); err != nil {
			res.OK = false
			res.ErrorMessage = err.Error()
		}
		results = append(results, res)
	}

	analysis, err := s.analyzer.Analyze(projectPath, filePaths)
	if err != nil {
		return nil, fmt.Errorf("running analyzer: %w", err)
	}

	results = foldFatalErrors(projectPath, results, analysis.FatalErrors)

	return domain.BuildReport(results, analysis.WarningCount, warningThreshold), nil
}

// foldFatalErrors marks files with fatal analysis errors as failed,
// equivalent to a parse failure. Analyzers may report absolute paths, so
// each error path is normalized against projectPath before matching.
// Errors in files outside the checked set are appended after the
// input-ordered results.
func foldFatalErrors(projectPath string, results []domain.FileCheckResult, fatals []domain.FatalError) []domain.FileCheckResult {
	for _, fe := range fatals {
		path := normalizePath(projectPath, fe.File)
		matched := false
		for i := range results {
			if samePath(results[i].Path, path) {
				matched = true
				if results[i].OK {
					results[i].OK = false
					results[i].ErrorMessage = fe.Message
				}
				break
			}
		}
		if !matched {
			results = append(results, domain.FileCheckResult{
				Path:         path,
				OK:           false,
				ErrorMessage: fe.Message,
			})
		}
	}
	return results
}

// normalizePath rewrites an absolute analyzer path as projectPath-relative
// so it matches the checked file set. Paths outside the project (or
// already relative) pass through unchanged.
func normalizePath(projectPath, path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	root, err := filepath.Abs(projectPath)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
