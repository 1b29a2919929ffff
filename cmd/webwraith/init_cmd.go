package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const configFileName = ".webwraith.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .webwraith.yaml config file",
	Long:  `Create a .webwraith.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(configFileName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}

		if err := os.WriteFile(configFileName, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
		return nil
	},
}

const defaultConfig = `# webwraith configuration

# Shared settings
verbose: false
color: false

log:
  level: ""               # debug | info | warn | error (empty = warn)
  format: console         # console | json
  file: ""                # rotated JSON log file, empty to disable

# Cascade resolution
style:
  css:
    - "styles/**/*.css"
  doc:
    - "pages/**/*.html"
  parser: minimal         # minimal | html
  workers: 0              # 0 = one per CPU
  output-format: tree     # tree | json
  show-text: false

# Stylesheet checks
check:
  css:
    - "styles/**/*.css"
  output-format: issues   # issues | json
  max-issues: 0           # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
