package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	bannerPass    = lipgloss.NewStyle().Bold(true).Foreground(success)
	bannerFail    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	separatorLine = faintStyle.Render(strings.Repeat("─", 48))
)

// Summary banners. These exact strings are the contract with pipeline
// drivers that grep the gate's output.
const (
	PassBanner = "All syntax validation tests passed!"
	FailBanner = "Some tests failed"
)

// RenderReport renders a ValidationReport for terminal output. Each file
// produces an "OK: <path>" or "FAILED: <path> - <reason>" line, followed
// by the warning tally and the final banner.
func RenderReport(report *domain.ValidationReport) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("lintgate"))
	if report.CommitHash != "" {
		b.WriteString("  " + dimStyle.Render(shortHash(report.CommitHash)))
	}
	b.WriteString("\n\n")

	for _, res := range report.Results {
		if res.OK {
			fmt.Fprintf(&b, "  %s\n", passStyle.Render("OK: "+res.Path))
		} else {
			fmt.Fprintf(&b, "  %s\n", failStyle.Render(fmt.Sprintf("FAILED: %s - %s", res.Path, res.ErrorMessage)))
		}
	}

	if len(report.Results) > 0 {
		b.WriteString("\n")
	}

	warnLine := fmt.Sprintf("warnings: %d (threshold %d)", report.WarningCount, report.WarningThreshold)
	if report.ThresholdExceeded() {
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render(warnLine), failStyle.Render("exceeded"))
	} else {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(warnLine))
	}

	b.WriteString("  " + separatorLine + "\n")

	if report.Passed {
		b.WriteString("  " + bannerPass.Render(PassBanner) + "\n")
	} else {
		b.WriteString("  " + bannerFail.Render(FailBanner) + "\n")
	}

	return b.String()
}

// RenderHistory renders past gate runs, most recent last.
func RenderHistory(entries []domain.RunEntry) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("lintgate") + "  " + dimStyle.Render("run history") + "\n\n")

	if len(entries) == 0 {
		b.WriteString("  " + dimStyle.Render("No runs recorded yet.") + "\n")
		return b.String()
	}

	for _, e := range entries {
		verdict := passStyle.Render("pass")
		if !e.Passed {
			verdict = failStyle.Render("fail")
		}

		line := fmt.Sprintf("%s  %s  %d files, %d failed, %d/%d warnings",
			e.Timestamp, verdict, e.FilesChecked, e.FilesFailed, e.WarningCount, e.WarningThreshold)
		if e.CommitHash != "" {
			line += "  " + dimStyle.Render(shortHash(e.CommitHash))
		}
		b.WriteString("  " + line + "\n")
	}

	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
