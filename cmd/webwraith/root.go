package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webwraith",
	Short: "Stylesheet cascade resolver",
	Long: `Parse stylesheets and resolve which declarations apply to every element
of a document, by selector specificity and then source order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Default behavior: run style when no subcommand is given.
	// We must call loadConfig here because PreRunE of styleCmd
	// is not triggered when delegating via rootCmd.RunE.
	// Assigned in init to avoid an initialization cycle through flagKey.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd, nil); err != nil {
			return err
		}
		return runStyle(cmd, nil)
	}

	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".webwraith.yaml", "Config file path")
	pf.String("log-level", "", "Log level: debug|info|warn|error (default: warn, debug with --verbose)")
	pf.String("log-format", "console", "Log format: console|json")
	pf.String("log-file", "", "Also write JSON logs to this file (rotated)")

	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
