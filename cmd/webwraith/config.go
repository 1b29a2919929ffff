package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/babalolajnr/webwraith"
	"github.com/babalolajnr/webwraith/internal/logging"
)

var k = koanf.New(".")

// persistentKeys maps global flags whose config key differs from the flag name.
var persistentKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command, _ []string) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".webwraith.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Defaults only fill keys that no
	// file or env value set.
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, flagKey(cmd)), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// flagKey maps a flag onto its config key: command flags live under the
// command's section (--css on check is check.css), global flags at the top.
func flagKey(cmd *cobra.Command) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key := f.Name
		if mapped, ok := persistentKeys[f.Name]; ok {
			key = mapped
		} else if cmd != rootCmd && cmd.LocalNonPersistentFlags().Lookup(f.Name) != nil {
			key = cmd.Name() + "." + f.Name
		}
		return key, posflag.FlagVal(cmd.Flags(), f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (WEBWRAITH_* prefix)
	if err := k.Load(env.Provider("WEBWRAITH_", ".", func(s string) string {
		// WEBWRAITH_STYLE_PARSER -> style.parser
		// WEBWRAITH_LOG_LEVEL -> log.level
		// WEBWRAITH_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "WEBWRAITH_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildStyleConfig constructs the library's Config for the style command.
func buildStyleConfig() webwraith.Config {
	return webwraith.Config{
		Stylesheets: getStringsWithDefault("style.css", []string{"**/*.css"}),
		Documents:   getStringsWithDefault("style.doc", []string{"**/*.html"}),
		Parser:      getStringWithDefault("style.parser", webwraith.ParserMinimal),
		Workers:     getIntWithDefault("style.workers", 0),
		ShowText:    getBoolWithDefault("style.show-text", false),
		UseColors:   getBoolWithDefault("color", false),
	}
}

// buildCheckConfig constructs the library's Config for the check command.
func buildCheckConfig() webwraith.Config {
	return webwraith.Config{
		Stylesheets:      getStringsWithDefault("check.css", []string{"**/*.css"}),
		MaxIssues:        getIntWithDefault("check.max-issues", 0),
		PrintIssuedLines: getBoolWithDefault("check.print-lines", true),
		PrintLinterName:  getBoolWithDefault("check.print-linter-name", true),
		UseColors:        getBoolWithDefault("color", false),
	}
}

// newLogger builds the process logger from the log.* keys. --verbose lowers
// the default level to debug and --quiet raises it to error.
func newLogger() (*zap.Logger, error) {
	level := getStringWithDefault("log.level", "")
	if level == "" {
		switch {
		case getBoolWithDefault("quiet", false):
			level = "error"
		case getBoolWithDefault("verbose", false):
			level = "debug"
		default:
			level = "warn"
		}
	}

	return logging.New(logging.Config{
		Level:  level,
		Format: getStringWithDefault("log.format", "console"),
		File:   getStringWithDefault("log.file", ""),
	})
}

// getStringWithDefault returns the key's value, or the default when unset or empty.
func getStringWithDefault(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithDefault returns the key's list, or the default when unset or empty.
func getStringsWithDefault(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithDefault returns the key's value, or the default when unset.
func getBoolWithDefault(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithDefault returns the key's value, or the default when unset.
func getIntWithDefault(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
