package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

func TestRenderReport_PassingRun(t *testing.T) {
	report := domain.BuildReport([]domain.FileCheckResult{
		{Path: "src/app.js", OK: true},
		{Path: "src/orbit.js", OK: true},
	}, 21, 25)

	out := RenderReport(report)

	assert.Contains(t, out, "OK: src/app.js")
	assert.Contains(t, out, "OK: src/orbit.js")
	assert.Contains(t, out, PassBanner)
	assert.NotContains(t, out, FailBanner)
}

func TestRenderReport_FailingFile(t *testing.T) {
	report := domain.BuildReport([]domain.FileCheckResult{
		{Path: "src/app.js", OK: true},
		{Path: "src/missing.js", OK: false, ErrorMessage: "no such file"},
	}, 0, 25)

	out := RenderReport(report)

	assert.Contains(t, out, "OK: src/app.js")
	assert.Contains(t, out, "FAILED: src/missing.js - no such file")
	assert.Contains(t, out, FailBanner)
}

func TestRenderReport_ThresholdExceeded(t *testing.T) {
	report := domain.BuildReport([]domain.FileCheckResult{
		{Path: "src/app.js", OK: true},
	}, 26, 25)

	out := RenderReport(report)

	assert.Contains(t, out, "warnings: 26 (threshold 25)")
	assert.Contains(t, out, "exceeded")
	assert.Contains(t, out, FailBanner)
}

func TestRenderReport_StampsShortCommit(t *testing.T) {
	report := domain.BuildReport(nil, 0, 0)
	report.CommitHash = "0123456789abcdef"

	out := RenderReport(report)

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789abcdef")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := RenderHistory(nil)

	assert.Contains(t, out, "No runs recorded yet.")
}

func TestRenderHistory_Entries(t *testing.T) {
	out := RenderHistory([]domain.RunEntry{
		{Timestamp: "2026-08-26T10:00:00Z", Passed: true, FilesChecked: 4, WarningCount: 3, WarningThreshold: 25},
		{Timestamp: "2026-08-26T11:00:00Z", Passed: false, FilesChecked: 4, FilesFailed: 1, WarningCount: 30, WarningThreshold: 25},
	})

	assert.Contains(t, out, "2026-08-26T10:00:00Z")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "fail")
	assert.Contains(t, out, "4 files, 1 failed, 30/25 warnings")
}
