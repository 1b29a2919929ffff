package scan

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringCursor struct {
	input string
	pos   int
}

func (s *stringCursor) Pos() int       { return s.pos }
func (s *stringCursor) SetPos(pos int) { s.pos = pos }
func (s *stringCursor) Input() string  { return s.input }

func TestPeekAndNext(t *testing.T) {
	c := &stringCursor{input: "aé"}

	r, ok := Peek(c)
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, c.Pos(), "peek must not move")

	r, ok = Next(c)
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = Next(c)
	require.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 3, c.Pos(), "positions are byte offsets")

	_, ok = Next(c)
	assert.False(t, ok)
	assert.True(t, EOF(c))
}

func TestStartsWith(t *testing.T) {
	c := &stringCursor{input: "</div>"}
	assert.True(t, StartsWith(c, "</"))
	assert.False(t, StartsWith(c, "<!--"))

	c.SetPos(len(c.input))
	assert.False(t, StartsWith(c, ""), "nothing starts at end of input")
}

func TestConsumeWhile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pred  func(rune) bool
		want  string
		pos   int
	}{
		{"digits", "123abc", unicode.IsDigit, "123", 3},
		{"none", "abc", unicode.IsDigit, "", 0},
		{"all", "abc", unicode.IsLetter, "abc", 3},
		{"empty input", "", unicode.IsLetter, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &stringCursor{input: tt.input}
			got := ConsumeWhile(c, tt.pred)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pos, c.Pos())
		})
	}
}

func TestSkipWhitespace(t *testing.T) {
	c := &stringCursor{input: " \t\n x"}
	SkipWhitespace(c)

	r, ok := Peek(c)
	require.True(t, ok)
	assert.Equal(t, 'x', r)
}
