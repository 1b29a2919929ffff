package webwraith

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babalolajnr/webwraith/internal/css"
	"github.com/babalolajnr/webwraith/internal/markup"
	"github.com/babalolajnr/webwraith/internal/style"
)

func TestDetermineStyleFormat(t *testing.T) {
	tests := []struct {
		formatFlag string
		expected   OutputFormat
	}{
		{"", OutputTree},
		{"tree", OutputTree},
		{"json", OutputJSON},
		{"issues", OutputTree},
		{"yaml", OutputTree},
	}

	for _, tt := range tests {
		t.Run(tt.formatFlag, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineStyleFormat(tt.formatFlag))
		})
	}
}

func TestDetermineCheckFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{"default", "", false, OutputIssues},
		{"explicit issues", "issues", false, OutputIssues},
		{"explicit json", "json", false, OutputJSON},
		{"quiet wins", "json", true, OutputIssues},
		{"invalid falls back", "markdown", false, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineCheckFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func sampleStyleResult(t *testing.T) *StyleResult {
	t.Helper()
	sheet, err := css.Parse("div { display: block; } .lead { color: #ff0000; margin: 4px; } #x { display: none; }")
	require.NoError(t, err)
	doc, err := markup.Parse("<div><p class='lead'>Hello</p><!-- c --><span id='x'></span></div>")
	require.NoError(t, err)

	return &StyleResult{
		FilesScanned: 1,
		RulesParsed:  len(sheet.Rules),
		Stylesheet:   sheet,
		Documents: []DocumentResult{
			{Path: "index.html", Document: doc, Root: style.StyleTree(doc, sheet)},
		},
	}
}

func TestWriteStyleOutputTree(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	tests := []struct {
		name     string
		showText bool
		want     string
	}{
		{
			name: "elements only",
			want: "index.html\n" +
				"<div> block {display: block}\n" +
				"  <p.lead> inline {color: #ff0000; margin: 4px}\n" +
				"  <span#x> none {display: none}\n" +
				"\n1 document, 1 stylesheet, 3 rules\n",
		},
		{
			name:     "with text",
			showText: true,
			want: "index.html\n" +
				"<div> block {display: block}\n" +
				"  <p.lead> inline {color: #ff0000; margin: 4px}\n" +
				"    \"Hello\"\n" +
				"  <!-- c -->\n" +
				"  <span#x> none {display: none}\n" +
				"\n1 document, 1 stylesheet, 3 rules\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteStyleOutput(&buf, sampleStyleResult(t), OutputTree, Config{ShowText: tt.showText})
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteStyleOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStyleOutput(&buf, sampleStyleResult(t), OutputJSON, Config{})
	require.NoError(t, err)

	var out JSONStyleOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, JSONStyleStats{Stylesheets: 1, Rules: 3, Documents: 1}, out.Summary)
	require.Len(t, out.Documents, 1)

	root := out.Documents[0].Root
	assert.Equal(t, "element", root.Kind)
	assert.Equal(t, "div", root.Tag)
	assert.Equal(t, "block", root.Display)
	require.Len(t, root.Children, 2, "text and comments are omitted by default")

	p := root.Children[0]
	assert.Equal(t, map[string]string{"color": "#ff0000", "margin": "4px"}, p.Properties)
	assert.Equal(t, map[string]string{"class": "lead"}, p.Attributes)
	assert.Equal(t, "none", root.Children[1].Display)
}

func TestWriteStyleJSONWithText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStyleJSON(&buf, sampleStyleResult(t), Config{ShowText: true}))

	var out JSONStyleOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	root := out.Documents[0].Root
	require.Len(t, root.Children, 3)
	assert.Equal(t, "comment", root.Children[1].Kind)
	assert.Equal(t, " c ", root.Children[1].Text)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, JSONNode{Kind: "text", Text: "Hello"}, root.Children[0].Children[0])
}

func TestWriteCheckOutputJSON(t *testing.T) {
	result := &CheckResult{
		FilesScanned: 2,
		RulesParsed:  5,
		Issues: []Issue{{
			FromLinter:  LinterName,
			Text:        "expected ';', found '}'",
			Severity:    SeverityError,
			SourceLines: []string{"p { color: red }"},
			Pos:         IssuePos{Filename: "a.css", Line: 1, Column: 16, Offset: 15},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCheckOutput(&buf, result, OutputJSON, Config{}))

	var out JSONCheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, JSONCheckSummary{TotalIssues: 1, FilesScanned: 2, RulesParsed: 5}, out.Summary)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, JSONIssue{
		File:     "a.css",
		Line:     1,
		Column:   16,
		Offset:   15,
		Severity: "error",
		Message:  "expected ';', found '}'",
		Linter:   "cssparse",
		Source:   "p { color: red }",
	}, out.Issues[0])
}

func TestWriteOutputRejectsMismatchedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteStyleOutput(&buf, &StyleResult{}, OutputIssues, Config{}))
	assert.Error(t, WriteCheckOutput(&buf, &CheckResult{}, OutputTree, Config{}))
}
