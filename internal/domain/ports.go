package domain

// SyntaxChecker verifies that a single source file is syntactically
// well-formed without executing it. A nil return means the file parses.
type SyntaxChecker interface {
	CheckFile(path string) error
}

// WarningAnalyzer runs the external static-analysis step over a file set
// and reports the aggregate warning count plus any fatal errors.
type WarningAnalyzer interface {
	Analyze(projectPath string, files []string) (*AnalysisResult, error)
}

// ConfigLoader loads the gate configuration for a project.
type ConfigLoader interface {
	Load(projectPath string) (GateConfig, error)
}

// FileScanner expands a project directory into the list of checkable
// source files, relative to projectPath.
type FileScanner interface {
	Scan(projectPath string, excludePaths ...string) ([]string, error)
}

// GitInfo exposes repository metadata for report stamping and for
// deriving the changed-file set.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	ChangedFiles(projectPath string) ([]string, error)
}

// RunHistory persists past gate runs.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}
