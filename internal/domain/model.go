package domain

import "time"

// FileCheckResult is the outcome of a syntax check on a single file.
// Immutable once produced; owned by the run's ValidationReport.
type FileCheckResult struct {
	Path         string `json:"path"`
	OK           bool   `json:"ok"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ValidationReport aggregates the outcome of a full gate run.
// Results preserves the input file-list order exactly.
type ValidationReport struct {
	Results          []FileCheckResult `json:"results"`
	WarningCount     int               `json:"warning_count"`
	WarningThreshold int               `json:"warning_threshold"`
	Passed           bool              `json:"passed"`
	Timestamp        time.Time         `json:"timestamp"`
	CommitHash       string            `json:"commit_hash,omitempty"`
}

// BuildReport computes the pass/fail verdict from per-file results and the
// measured warning count. An empty result set with zero warnings is a
// vacuous pass.
func BuildReport(results []FileCheckResult, warningCount, warningThreshold int) *ValidationReport {
	r := &ValidationReport{
		Results:          results,
		WarningCount:     warningCount,
		WarningThreshold: warningThreshold,
		Timestamp:        time.Now(),
	}
	r.Passed = r.AllOK() && warningCount <= warningThreshold
	return r
}

// AllOK reports whether every file passed its syntax check.
func (r *ValidationReport) AllOK() bool {
	for _, res := range r.Results {
		if !res.OK {
			return false
		}
	}
	return true
}

// FailedFiles returns the results for files that did not pass, in order.
func (r *ValidationReport) FailedFiles() []FileCheckResult {
	var failed []FileCheckResult
	for _, res := range r.Results {
		if !res.OK {
			failed = append(failed, res)
		}
	}
	return failed
}

// ThresholdExceeded reports whether the warning count alone fails the gate.
func (r *ValidationReport) ThresholdExceeded() bool {
	return r.WarningCount > r.WarningThreshold
}

// AnalysisResult is what the external static-analysis step reports back.
// Fatal errors are folded into per-file results by the gate service.
type AnalysisResult struct {
	WarningCount int          `json:"warning_count"`
	FatalErrors  []FatalError `json:"fatal_errors,omitempty"`
}

// FatalError is an analysis error severe enough to fail the file it
// occurred in, equivalent to a parse failure.
type FatalError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// RunEntry is a single historical gate run.
type RunEntry struct {
	Timestamp        string `json:"timestamp"`
	CommitHash       string `json:"commit_hash,omitempty"`
	Passed           bool   `json:"passed"`
	FilesChecked     int    `json:"files_checked"`
	FilesFailed      int    `json:"files_failed"`
	WarningCount     int    `json:"warning_count"`
	WarningThreshold int    `json:"warning_threshold"`
}
