package webwraith

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/babalolajnr/webwraith/internal/css"
)

// Check parses each stylesheet matched by config.Stylesheets on its own and
// reports every syntax error as an Issue. Only I/O failures are returned as
// errors.
func Check(config Config) (*CheckResult, error) {
	files, stats, err := expandGlobPatterns(config.Stylesheets)
	if err != nil {
		return nil, fmt.Errorf("failed to expand stylesheet patterns: %w", err)
	}

	result := &CheckResult{FilesScanned: stats.FilesScanned}
	parser := css.NewParser(nil)

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		src := string(data)
		sheet, err := parser.Parse(src, path)
		if err != nil {
			var serr *SourceError
			if !errors.As(locateError(path, src, err), &serr) {
				return nil, err
			}
			result.Issues = append(result.Issues, newParseIssue(serr, src))
			continue
		}
		result.RulesParsed += len(sheet.Rules)
	}

	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.TruncatedCount = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}

	return result, nil
}

func newParseIssue(serr *SourceError, source string) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       fmt.Sprintf("expected %s, found %s", serr.Err.Expected, serr.Err.Found),
		Severity:   SeverityError,
		Pos: IssuePos{
			Filename: serr.Path,
			Line:     serr.Line,
			Column:   serr.Column,
			Offset:   serr.Err.Offset,
		},
	}
	if line, ok := sourceLine(source, serr.Line); ok {
		issue.SourceLines = []string{line}
	}
	return issue
}

// sourceLine returns the 1-based line n of source without its terminator.
func sourceLine(source string, n int) (string, bool) {
	lines := strings.Split(source, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}
