package css

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// ParseError reports the first grammar violation in a stylesheet.
type ParseError struct {
	Offset   int    // byte offset into the source
	Expected string // what the grammar required at Offset
	Found    string // quoted offending character, or "EOF"
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// Position maps the error offset onto source, returning a 1-based line and
// column (counted in runes) and a context snippet pointing at the column.
func (e *ParseError) Position(source string) (line, col int, context string) {
	return parse.Position(strings.NewReader(source), e.Offset)
}
