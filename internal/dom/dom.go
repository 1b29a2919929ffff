// Package dom holds the document tree consumed by the style resolver.
//
// A Document is an arena: every node lives in one slice and is addressed by
// a NodeID, so resolved trees can refer to source nodes by index without
// sharing pointers into the document.
package dom

import (
	"fmt"
	"io"
	"strings"
)

// NodeID indexes a node inside its Document.
type NodeID int

// Kind is the variant of a Node.
type Kind uint8

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ElementData is the tag name and attributes of an element. Attribute names
// are unique.
type ElementData struct {
	TagName    string
	Attributes map[string]string
}

// ID returns the value of the id attribute.
func (e ElementData) ID() (string, bool) {
	id, ok := e.Attributes["id"]
	return id, ok
}

// Classes returns the whitespace separated entries of the class attribute.
func (e ElementData) Classes() map[string]struct{} {
	fields := strings.Fields(e.Attributes["class"])
	classes := make(map[string]struct{}, len(fields))
	for _, c := range fields {
		classes[c] = struct{}{}
	}
	return classes
}

// Node is one arena entry. Element is only meaningful for ElementNode, Data
// holds the text of TextNode and CommentNode.
type Node struct {
	Kind     Kind
	Element  ElementData
	Data     string
	Children []NodeID
}

// Document is an immutable node arena with a designated root.
type Document struct {
	nodes []Node
	root  NodeID
}

// Root returns the id of the root node.
func (d *Document) Root() NodeID { return d.root }

// Len returns the number of nodes in the arena.
func (d *Document) Len() int { return len(d.nodes) }

// Node returns the node for id. It panics if id was not issued for d.
// Callers must not modify the returned node.
func (d *Document) Node(id NodeID) *Node { return &d.nodes[id] }

// Children returns the ordered child ids of id.
func (d *Document) Children(id NodeID) []NodeID { return d.nodes[id].Children }

// Dump writes an indented outline of the tree to w.
func (d *Document) Dump(w io.Writer) error {
	return d.dump(w, d.root, 0)
}

func (d *Document) dump(w io.Writer, id NodeID, depth int) error {
	indent := strings.Repeat("  ", depth)
	n := d.Node(id)

	switch n.Kind {
	case TextNode:
		_, err := fmt.Fprintf(w, "%s%s\n", indent, n.Data)
		return err
	case CommentNode:
		_, err := fmt.Fprintf(w, "%s<!-- %s -->\n", indent, n.Data)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s<%s>\n", indent, n.Element.TagName); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := d.dump(w, child, depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.Element.TagName)
	return err
}

// Builder assembles a Document bottom-up: children are created first and
// passed to Element.
type Builder struct {
	nodes []Node
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(n Node) NodeID {
	b.nodes = append(b.nodes, n)
	return NodeID(len(b.nodes) - 1)
}

// Element adds an element node. A nil attrs map is treated as empty.
func (b *Builder) Element(tag string, attrs map[string]string, children ...NodeID) NodeID {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return b.add(Node{
		Kind:     ElementNode,
		Element:  ElementData{TagName: tag, Attributes: attrs},
		Children: children,
	})
}

// Text adds a text node.
func (b *Builder) Text(data string) NodeID {
	return b.add(Node{Kind: TextNode, Data: data})
}

// Comment adds a comment node.
func (b *Builder) Comment(data string) NodeID {
	return b.add(Node{Kind: CommentNode, Data: data})
}

// Build returns the document rooted at root. The builder must not be used
// afterwards.
func (b *Builder) Build(root NodeID) *Document {
	doc := &Document{nodes: b.nodes, root: root}
	b.nodes = nil
	return doc
}
