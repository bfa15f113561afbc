package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".lintgate.yaml"

const starterConfig = `# LintGate configuration
# See: https://github.com/i230016arsaltemuri/lintgate

# Maximum number of static-analysis warnings tolerated before the gate fails.
warning_threshold: 25

# Explicit ordered list of files to check. When omitted, the project is
# scanned for every checkable source file.
# files:
#   - src/app.js
#   - src/orbit.js

# exclude_paths:
#   - generated
#   - third_party

# External linter supplying the warning count.
analyzer:
  format: eslint
  command:
    - npx
    - eslint
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .lintgate.yaml configuration file",
		Long:  "Create a .lintgate.yaml with sensible defaults.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .lintgate.yaml")

	return cmd
}
