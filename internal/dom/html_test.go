package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTML(t *testing.T) {
	src := `<!DOCTYPE html>
<html>
  <head><title>T</title></head>
  <body>
    <!-- banner -->
    <div id="main" class="wide note">Hello</div>
  </body>
</html>`

	doc, err := ParseHTML(strings.NewReader(src))
	require.NoError(t, err)

	root := doc.Node(doc.Root())
	require.Equal(t, ElementNode, root.Kind)
	assert.Equal(t, "html", root.Element.TagName)

	kids := doc.Children(doc.Root())
	require.Len(t, kids, 2)
	assert.Equal(t, "head", doc.Node(kids[0]).Element.TagName)

	body := kids[1]
	assert.Equal(t, "body", doc.Node(body).Element.TagName)

	bodyKids := doc.Children(body)
	require.Len(t, bodyKids, 2, "whitespace-only text is dropped")
	assert.Equal(t, CommentNode, doc.Node(bodyKids[0]).Kind)
	assert.Equal(t, " banner ", doc.Node(bodyKids[0]).Data)

	div := doc.Node(bodyKids[1])
	id, ok := div.Element.ID()
	assert.True(t, ok)
	assert.Equal(t, "main", id)
	assert.Contains(t, div.Element.Classes(), "note")

	require.Len(t, div.Children, 1)
	assert.Equal(t, "Hello", doc.Node(div.Children[0]).Data)
}

func TestParseHTMLFragment(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader("<p>loose</p>"))
	require.NoError(t, err)

	// The HTML5 algorithm always synthesizes html, head and body.
	assert.Equal(t, "html", doc.Node(doc.Root()).Element.TagName)
	kids := doc.Children(doc.Root())
	require.Len(t, kids, 2)
	body := doc.Children(kids[1])
	require.Len(t, body, 1)
	assert.Equal(t, "p", doc.Node(body[0]).Element.TagName)
}
