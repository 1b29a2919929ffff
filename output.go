package webwraith

import (
	"fmt"
	"io"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	OutputTree   OutputFormat = "tree"   // Indented style trees (style default)
	OutputIssues OutputFormat = "issues" // golangci-lint style issues (check default)
	OutputJSON   OutputFormat = "json"   // Machine-readable export
)

// DetermineStyleFormat maps the --output-format flag of the style command.
// Unknown values fall back to the tree format.
func DetermineStyleFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputTree
	}
}

// DetermineCheckFormat maps the --output-format flag of the check command.
// Quiet mode always uses issues (the caller suppresses the text).
func DetermineCheckFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteStyleOutput writes style trees in the specified format
func WriteStyleOutput(w io.Writer, result *StyleResult, format OutputFormat, config Config) error {
	switch format {
	case OutputTree:
		return NewTreeWriter(w, config).PrintDocuments(*result)
	case OutputJSON:
		return WriteStyleJSON(w, result, config)
	default:
		return fmt.Errorf("output format %q is not supported for style", format)
	}
}

// WriteCheckOutput writes check results in the specified format
func WriteCheckOutput(w io.Writer, result *CheckResult, format OutputFormat, config Config) error {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		return nil
	case OutputJSON:
		return WriteCheckJSON(w, result)
	default:
		return fmt.Errorf("output format %q is not supported for check", format)
	}
}
