package webwraith

// Issue represents a single diagnostic in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssparse"
	Text        string   `json:"Text"`        // "expected ';', found '}'"
	Severity    string   `json:"Severity"`    // "error"
	SourceLines []string `json:"SourceLines"` // Line containing the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "styles/main.css"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 1-based, in runes
	Offset   int    `json:"Offset"`   // byte offset into the file
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName identifies stylesheet syntax issues.
const LinterName = "cssparse"
