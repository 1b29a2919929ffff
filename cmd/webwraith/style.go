package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/babalolajnr/webwraith"
)

var styleCmd = &cobra.Command{
	Use:     "style",
	Aliases: []string{"resolve"},
	Short:   "Resolve the cascade for documents",
	Long: `Parse every stylesheet, then build the style tree of each document:
the winning value of every property for every element.`,
	PreRunE: loadConfig,
	RunE:    runStyle,
}

func init() {
	f := styleCmd.Flags()
	f.StringSlice("css", []string{"**/*.css"}, "Stylesheet glob patterns, applied in order")
	f.StringSlice("doc", []string{"**/*.html"}, "Document glob patterns")
	f.String("parser", webwraith.ParserMinimal, "Document parser: minimal|html")
	f.Int("workers", 0, "Documents resolved in parallel (0 = one per CPU)")
	f.String("output-format", "tree", "Output format: tree|json")
	f.Bool("show-text", false, "Include text and comment nodes in the output")
}

func runStyle(cmd *cobra.Command, _ []string) error {
	config := buildStyleConfig()

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := webwraith.Style(ctx, config, log)
	if err != nil {
		return fmt.Errorf("style failed: %w", err)
	}

	if getBoolWithDefault("quiet", false) {
		return nil
	}

	format := webwraith.DetermineStyleFormat(getStringWithDefault("style.output-format", "tree"))
	return webwraith.WriteStyleOutput(cmd.OutOrStdout(), result, format, config)
}
