package webwraith

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.css", "p { color: red; }\ndiv, span { margin: 0px; }")
	bad := writeFile(t, dir, "bad.css", "body {\n\tcolor: #12345g;\n}")

	result, err := Check(Config{Stylesheets: []string{filepath.Join(dir, "*.css")}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.RulesParsed, "only well-formed sheets count")
	require.Len(t, result.Issues, 1)

	issue := result.Issues[0]
	assert.Equal(t, LinterName, issue.FromLinter)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, `expected hex digit pair, found "5g"`, issue.Text)
	assert.Equal(t, IssuePos{Filename: bad, Line: 2, Column: 14, Offset: 20}, issue.Pos)
	assert.Equal(t, []string{"\tcolor: #12345g;"}, issue.SourceLines)
}

func TestCheckMaxIssues(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.css", "b.css", "c.css"} {
		writeFile(t, dir, name, "p { color red; }")
	}

	tests := []struct {
		name          string
		maxIssues     int
		wantIssues    int
		wantTruncated int
	}{
		{"unlimited", 0, 3, 0},
		{"limited", 2, 2, 1},
		{"limit above count", 5, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Check(Config{
				Stylesheets: []string{filepath.Join(dir, "*.css")},
				MaxIssues:   tt.maxIssues,
			})
			require.NoError(t, err)
			assert.Len(t, result.Issues, tt.wantIssues)
			assert.Equal(t, tt.wantTruncated, result.TruncatedCount)
		})
	}
}

func TestSourceLine(t *testing.T) {
	src := "one\r\ntwo\nthree"

	line, ok := sourceLine(src, 1)
	assert.True(t, ok)
	assert.Equal(t, "one", line)

	line, ok = sourceLine(src, 3)
	assert.True(t, ok)
	assert.Equal(t, "three", line)

	_, ok = sourceLine(src, 4)
	assert.False(t, ok)
	_, ok = sourceLine(src, 0)
	assert.False(t, ok)
}
