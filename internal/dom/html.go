package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML loads an HTML5 document. The <html> element becomes the root.
// Doctype nodes and whitespace-only text are dropped; comments are kept.
func ParseHTML(r io.Reader) (*Document, error) {
	top, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rootElem *html.Node
	for c := top.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			rootElem = c
			break
		}
	}
	if rootElem == nil {
		return nil, fmt.Errorf("failed to parse HTML: no root element")
	}

	b := NewBuilder()
	root, _ := convertHTML(b, rootElem)
	return b.Build(root), nil
}

func convertHTML(b *Builder, n *html.Node) (NodeID, bool) {
	switch n.Type {
	case html.ElementNode:
		var children []NodeID
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if id, ok := convertHTML(b, c); ok {
				children = append(children, id)
			}
		}
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			if _, dup := attrs[a.Key]; !dup {
				attrs[a.Key] = a.Val
			}
		}
		return b.Element(n.Data, attrs, children...), true
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return 0, false
		}
		return b.Text(n.Data), true
	case html.CommentNode:
		return b.Comment(n.Data), true
	default:
		return 0, false
	}
}
