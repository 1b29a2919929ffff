// Package scan provides the character-level primitives shared by the
// stylesheet and markup parsers.
//
// A parser exposes its position and input through Cursor; the helpers in this
// package do the peeking and consuming. Positions are byte offsets into the
// input.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor is implemented by each concrete parser state.
type Cursor interface {
	Pos() int
	SetPos(pos int)
	Input() string
}

// EOF reports whether the cursor has consumed all of its input.
func EOF(c Cursor) bool {
	return c.Pos() >= len(c.Input())
}

// Peek returns the rune at the current position without consuming it.
// ok is false at end of input.
func Peek(c Cursor) (r rune, ok bool) {
	if EOF(c) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.Input()[c.Pos():])
	return r, true
}

// Next consumes and returns the rune at the current position.
func Next(c Cursor) (r rune, ok bool) {
	if EOF(c) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.Input()[c.Pos():])
	c.SetPos(c.Pos() + size)
	return r, true
}

// StartsWith reports whether the remaining input begins with prefix.
func StartsWith(c Cursor, prefix string) bool {
	if EOF(c) {
		return false
	}
	return strings.HasPrefix(c.Input()[c.Pos():], prefix)
}

// ConsumeWhile consumes runes while pred holds and returns them.
func ConsumeWhile(c Cursor, pred func(rune) bool) string {
	start := c.Pos()
	for {
		r, ok := Peek(c)
		if !ok || !pred(r) {
			break
		}
		Next(c)
	}
	return c.Input()[start:c.Pos()]
}

// SkipWhitespace consumes any run of Unicode whitespace.
func SkipWhitespace(c Cursor) {
	ConsumeWhile(c, unicode.IsSpace)
}
