package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/babalolajnr/webwraith"
)

// errIssuesFound makes the process exit non-zero without printing anything
// beyond the report itself.
var errIssuesFound = errors.New("stylesheet issues found")

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"lint"},
	Short:   "Report stylesheet syntax errors",
	Long: `Parse every stylesheet and report each malformed one with its location.
Exits with code 1 when any stylesheet fails to parse.`,
	PreRunE: loadConfig,
	RunE:    runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("css", []string{"**/*.css"}, "Stylesheet glob patterns")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Int("max-issues", 0, "Maximum issues to show (0 = unlimited)")
	f.Bool("print-lines", true, "Print the offending source line")
	f.Bool("print-linter-name", true, "Print the linter name after each issue")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildCheckConfig()

	result, err := webwraith.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithDefault("quiet", false)
	format := webwraith.DetermineCheckFormat(getStringWithDefault("check.output-format", "issues"), quiet)

	if !quiet {
		if err := webwraith.WriteCheckOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	if len(result.Issues) > 0 {
		return errIssuesFound
	}
	return nil
}
