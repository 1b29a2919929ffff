package markup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babalolajnr/webwraith/internal/dom"
)

func TestParse(t *testing.T) {
	src := `<html>
  <body class="page">
    <h1 id='title'>Hello, world!</h1>
    <!-- footer goes here -->
    <p class="a b">Text</p>
  </body>
</html>`

	doc, err := Parse(src)
	require.NoError(t, err)

	root := doc.Node(doc.Root())
	assert.Equal(t, "html", root.Element.TagName)
	require.Len(t, root.Children, 1)

	body := doc.Node(root.Children[0])
	assert.Equal(t, "body", body.Element.TagName)
	assert.Equal(t, "page", body.Element.Attributes["class"])
	require.Len(t, body.Children, 3)

	h1 := doc.Node(body.Children[0])
	id, ok := h1.Element.ID()
	assert.True(t, ok)
	assert.Equal(t, "title", id)
	require.Len(t, h1.Children, 1)
	assert.Equal(t, dom.TextNode, doc.Node(h1.Children[0]).Kind)
	assert.Equal(t, "Hello, world!", doc.Node(h1.Children[0]).Data)

	comment := doc.Node(body.Children[1])
	assert.Equal(t, dom.CommentNode, comment.Kind)
	assert.Equal(t, " footer goes here ", comment.Data)

	p := doc.Node(body.Children[2])
	assert.Contains(t, p.Element.Classes(), "b")
}

func TestParseRoots(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantTag  string
		wantKids int
	}{
		{"single element", "<div></div>", "div", 0},
		{"siblings are wrapped", "<p>a</p><p>b</p>", "html", 2},
		{"empty document", "", "html", 0},
		{"uppercase tags are lowered", "<DIV><Span>x</SPAN></div>", "div", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.src)
			require.NoError(t, err)

			root := doc.Node(doc.Root())
			assert.Equal(t, tt.wantTag, root.Element.TagName)
			assert.Len(t, root.Children, tt.wantKids)
		})
	}
}

func TestParseLoneTextIsRoot(t *testing.T) {
	doc, err := Parse("  hello ")
	require.NoError(t, err)

	root := doc.Node(doc.Root())
	assert.Equal(t, dom.TextNode, root.Kind)
	assert.Equal(t, "hello ", root.Data)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantOffset int
		wantMsg    string
	}{
		{"mismatched closing tag", "<div></span>", 5, "closing tag </span> does not match <div>"},
		{"missing closing tag", "<div>text", 9, "expected closing tag for <div>"},
		{"stray closing tag", "</div>", 0, "unexpected closing tag"},
		{"missing tag name", "< div></div>", 1, "expected tag name"},
		{"unquoted attribute", "<a href=x></a>", 8, "expected quoted attribute value"},
		{"unterminated attribute", `<a href="x></a>`, 8, "unterminated attribute value"},
		{"unterminated comment", "<!-- oops", 0, "unterminated comment"},
		{"missing equals", `<a href "x"></a>`, 8, `expected "="`},
		{"tag cut off", "<a", 2, "unexpected end of input inside tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.src)
			require.Error(t, err)
			assert.Nil(t, doc)

			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tt.wantOffset, serr.Offset)
			assert.Equal(t, tt.wantMsg, serr.Msg)
		})
	}
}
