package webwraith

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/babalolajnr/webwraith/internal/css"
	"github.com/babalolajnr/webwraith/internal/dom"
	"github.com/babalolajnr/webwraith/internal/style"
)

// Document parsers.
const (
	ParserMinimal = "minimal" // the built-in tag grammar
	ParserHTML    = "html"    // HTML5 via golang.org/x/net/html
)

// Config holds pipeline configuration
type Config struct {
	Stylesheets []string // Glob patterns for stylesheets (e.g., "styles/**/*.css")
	Documents   []string // Glob patterns for documents to style
	Parser      string   // ParserMinimal (default) or ParserHTML
	Workers     int      // Documents resolved in parallel; 0 = one per CPU

	// Output options
	ShowText         bool // Include text and comment nodes in tree output
	PrintIssuedLines bool // Show source lines under issues
	PrintLinterName  bool // Show the (cssparse) suffix
	UseColors        bool // Force color output (default: auto-detect)
	MaxIssues        int  // 0 = unlimited
}

// StyleResult contains the resolved style trees
type StyleResult struct {
	FilesScanned int // Stylesheets parsed
	RulesParsed  int // Rules across all stylesheets
	Stats        ScanStats
	Stylesheet   *css.Stylesheet
	Documents    []DocumentResult // In discovery order
}

// DocumentResult is one document and its style tree
type DocumentResult struct {
	Path     string
	Document *dom.Document
	Root     *style.StyledNode
}

// CheckResult contains stylesheet diagnostics
type CheckResult struct {
	FilesScanned   int
	RulesParsed    int
	Issues         []Issue
	TruncatedCount int // Issues removed due to MaxIssues
}

// SourceError is a stylesheet parse error located in a file.
type SourceError struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based, in runes
	Err    *css.ParseError
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s:%d:%d: expected %s, found %s", e.Path, e.Line, e.Column, e.Err.Expected, e.Err.Found)
}

func (e *SourceError) Unwrap() error { return e.Err }

// StylesheetError reports every stylesheet that failed to parse. Styling
// stops before any document is resolved.
type StylesheetError struct {
	Err error // multierr combination of *SourceError and I/O errors
}

func (e *StylesheetError) Error() string {
	errs := multierr.Errors(e.Err)
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d malformed stylesheet(s):\n  %s", len(errs), strings.Join(msgs, "\n  "))
}

// Unwrap exposes the individual failures to errors.As and errors.Is.
func (e *StylesheetError) Unwrap() []error { return multierr.Errors(e.Err) }
