package webwraith

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/babalolajnr/webwraith/internal/dom"
	"github.com/babalolajnr/webwraith/internal/style"
)

// TreeWriter prints style trees as indented outlines:
//
//	pages/index.html
//	<html> block
//	  <p.lead> inline {color: #ff0000; margin: 4px}
type TreeWriter struct {
	w         io.Writer
	useColors bool
	showText  bool
}

// NewTreeWriter creates a tree writer with the given configuration
func NewTreeWriter(w io.Writer, config Config) *TreeWriter {
	return &TreeWriter{
		w:         w,
		useColors: shouldUseColors(config),
		showText:  config.ShowText,
	}
}

// PrintDocuments prints every document of result followed by a summary line.
func (t *TreeWriter) PrintDocuments(result StyleResult) error {
	for i, doc := range result.Documents {
		if i > 0 {
			if _, err := fmt.Fprintln(t.w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(t.w, RenderStyle(StyleCyan, doc.Path, t.useColors)); err != nil {
			return err
		}
		if err := t.printNode(doc.Document, doc.Root, 0); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(t.w, "\n%s, %s, %s\n",
		pluralizeCount(len(result.Documents), "document", "documents"),
		pluralizeCount(result.FilesScanned, "stylesheet", "stylesheets"),
		pluralizeCount(result.RulesParsed, "rule", "rules"))
	return err
}

func (t *TreeWriter) printNode(doc *dom.Document, n *style.StyledNode, depth int) error {
	indent := strings.Repeat("  ", depth)
	node := doc.Node(n.Node)

	switch node.Kind {
	case dom.TextNode:
		if !t.showText {
			return nil
		}
		_, err := fmt.Fprintf(t.w, "%s%s\n", indent, RenderStyle(StyleGray, fmt.Sprintf("%q", strings.TrimSpace(node.Data)), t.useColors))
		return err
	case dom.CommentNode:
		if !t.showText {
			return nil
		}
		_, err := fmt.Fprintf(t.w, "%s%s\n", indent, RenderStyle(StyleGray, "<!--"+node.Data+"-->", t.useColors))
		return err
	}

	line := indent + RenderStyle(StyleCyan, "<"+elementLabel(node.Element)+">", t.useColors) +
		" " + t.renderDisplay(n.Display())
	if props := formatProperties(n.Values); props != "" {
		line += " {" + props + "}"
	}
	if _, err := fmt.Fprintln(t.w, line); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := t.printNode(doc, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (t *TreeWriter) renderDisplay(d style.Display) string {
	switch d {
	case style.Block:
		return RenderStyle(StyleGreen, d.String(), t.useColors)
	case style.None:
		return RenderStyle(StyleRed, d.String(), t.useColors)
	default:
		return d.String()
	}
}

// elementLabel renders an element the way a selector would match it:
// tag, then #id, then classes in attribute order.
func elementLabel(e dom.ElementData) string {
	var b strings.Builder
	b.WriteString(e.TagName)
	if id, ok := e.ID(); ok && id != "" {
		b.WriteString("#" + id)
	}
	for _, c := range strings.Fields(e.Attributes["class"]) {
		b.WriteString("." + c)
	}
	return b.String()
}

// formatProperties renders values as "name: value" pairs sorted by name.
func formatProperties(values style.PropertyMap) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + values[name].String()
	}
	return strings.Join(parts, "; ")
}
