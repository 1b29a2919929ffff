package webwraith

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/babalolajnr/webwraith/internal/dom"
	"github.com/babalolajnr/webwraith/internal/style"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonSchemaVersion is bumped whenever the export layout changes.
const jsonSchemaVersion = "1.0"

// JSONStyleOutput represents the structured style export schema
type JSONStyleOutput struct {
	Version   string         `json:"version"`
	Summary   JSONStyleStats `json:"summary"`
	Documents []JSONDocument `json:"documents"`
}

// JSONStyleStats contains high-level counts
type JSONStyleStats struct {
	Stylesheets int `json:"stylesheets"`
	Rules       int `json:"rules"`
	Documents   int `json:"documents"`
}

// JSONDocument is one resolved document
type JSONDocument struct {
	Path string   `json:"path"`
	Root JSONNode `json:"root"`
}

// JSONNode is one node of a resolved style tree
type JSONNode struct {
	Kind       string            `json:"kind"`
	Tag        string            `json:"tag,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Text       string            `json:"text,omitempty"`
	Display    string            `json:"display,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Children   []JSONNode        `json:"children,omitempty"`
}

// JSONCheckOutput represents the structured check export schema
type JSONCheckOutput struct {
	Version string           `json:"version"`
	Summary JSONCheckSummary `json:"summary"`
	Issues  []JSONIssue      `json:"issues"`
}

// JSONCheckSummary contains high-level issue counts
type JSONCheckSummary struct {
	TotalIssues  int `json:"total_issues"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
	RulesParsed  int `json:"rules_parsed"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteStyleJSON writes style trees as JSON. Text and comment nodes are
// included only when config.ShowText is set.
func WriteStyleJSON(w io.Writer, result *StyleResult, config Config) error {
	out := JSONStyleOutput{
		Version: jsonSchemaVersion,
		Summary: JSONStyleStats{
			Stylesheets: result.FilesScanned,
			Rules:       result.RulesParsed,
			Documents:   len(result.Documents),
		},
		Documents: make([]JSONDocument, len(result.Documents)),
	}
	for i, doc := range result.Documents {
		out.Documents[i] = JSONDocument{
			Path: doc.Path,
			Root: buildJSONNode(doc.Document, doc.Root, config.ShowText),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func buildJSONNode(doc *dom.Document, n *style.StyledNode, showText bool) JSONNode {
	node := doc.Node(n.Node)
	out := JSONNode{Kind: node.Kind.String()}

	switch node.Kind {
	case dom.ElementNode:
		out.Tag = node.Element.TagName
		if len(node.Element.Attributes) > 0 {
			out.Attributes = node.Element.Attributes
		}
		out.Display = n.Display().String()
		if len(n.Values) > 0 {
			out.Properties = make(map[string]string, len(n.Values))
			for name, v := range n.Values {
				out.Properties[name] = v.String()
			}
		}
	default:
		out.Text = node.Data
	}

	for _, child := range n.Children {
		if !showText && doc.Node(child.Node).Kind != dom.ElementNode {
			continue
		}
		out.Children = append(out.Children, buildJSONNode(doc, child, showText))
	}
	return out
}

// WriteCheckJSON writes check results as JSON
func WriteCheckJSON(w io.Writer, result *CheckResult) error {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Offset:   issue.Pos.Offset,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(JSONCheckOutput{
		Version: jsonSchemaVersion,
		Summary: JSONCheckSummary{
			TotalIssues:  len(result.Issues),
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
			RulesParsed:  result.RulesParsed,
		},
		Issues: issues,
	})
}
