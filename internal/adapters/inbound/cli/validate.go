package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/analyzer"
	configAdapter "github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/config"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/gitinfo"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/history"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/scanner"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/syntax"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/tui"
	"github.com/i230016arsaltemuri/lintgate/internal/application"
	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		path        string
		maxWarnings int
		jsonOutput  bool
		changed     bool
		noAnalysis  bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file1] [file2] ...",
		Short: "Run the validation gate over a set of source files",
		Long:  "Syntax-check each file and compare the static-analysis warning count against the configured threshold. Files come from the arguments, from --changed (git worktree status), from .lintgate.yaml, or from a project scan, in that order of preference.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			gi := gitinfo.New()

			files, err := resolveFiles(absPath, args, changed, cfg, gi)
			if err != nil {
				return err
			}

			threshold := cfg.WarningThreshold
			if cmd.Flags().Changed("max-warnings") {
				if maxWarnings < 0 {
					return fmt.Errorf("--max-warnings must be non-negative, got %d", maxWarnings)
				}
				threshold = maxWarnings
			}

			var warnings domain.WarningAnalyzer = analyzer.New(cfg.Analyzer)
			if noAnalysis {
				warnings = analyzer.Disabled{}
			}

			svc := application.NewGateService(syntax.New(), warnings)

			report, err := svc.Run(absPath, files, threshold)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			// Attach git commit hash if available
			if hash, hashErr := gi.CommitHash(absPath); hashErr == nil {
				report.CommitHash = hash
			}

			// Record the run, best-effort
			_ = history.New().Save(absPath, domain.RunEntry{
				Timestamp:        time.Now().Format(time.RFC3339),
				CommitHash:       report.CommitHash,
				Passed:           report.Passed,
				FilesChecked:     len(report.Results),
				FilesFailed:      len(report.FailedFiles()),
				WarningCount:     report.WarningCount,
				WarningThreshold: report.WarningThreshold,
			})

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.Passed {
				return fmt.Errorf("validation failed: %d file(s) failed, %d/%d warnings",
					len(report.FailedFiles()), report.WarningCount, report.WarningThreshold)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path")
	cmd.Flags().IntVar(&maxWarnings, "max-warnings", 0, "Override the configured warning threshold")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&changed, "changed", false, "Validate files changed in the git worktree")
	cmd.Flags().BoolVar(&noAnalysis, "no-analysis", false, "Skip the external static-analysis step")

	return cmd
}

// resolveFiles picks the file set: explicit args win, then the git
// worktree when --changed, then the config's files list, then a scan.
func resolveFiles(projectPath string, args []string, changed bool, cfg domain.GateConfig, gi domain.GitInfo) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if changed {
		if !gi.IsGitRepo(projectPath) {
			return nil, fmt.Errorf("--changed requires a git repository at %s", projectPath)
		}
		files, err := gi.ChangedFiles(projectPath)
		if err != nil {
			return nil, fmt.Errorf("listing changed files: %w", err)
		}
		return files, nil
	}

	if len(cfg.Files) > 0 {
		return cfg.Files, nil
	}

	files, err := scanner.New().Scan(projectPath, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return files, nil
}
