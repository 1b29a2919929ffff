// Package style resolves which declarations of a stylesheet apply to each
// element of a document, producing a tree of StyledNodes that mirrors the
// document tree.
package style

import (
	"github.com/babalolajnr/webwraith/internal/css"
	"github.com/babalolajnr/webwraith/internal/dom"
)

// PropertyMap maps property names to their cascaded values. It only ever
// holds properties some matching rule declared.
type PropertyMap map[string]css.Value

// StyledNode is a document node paired with its specified values. Node is
// an index into the document the tree was resolved from.
type StyledNode struct {
	Node     dom.NodeID
	Values   PropertyMap
	Children []*StyledNode
}

// Display is the box type a node generates.
type Display int

const (
	Inline Display = iota
	Block
	None
)

func (d Display) String() string {
	switch d {
	case Block:
		return "block"
	case None:
		return "none"
	default:
		return "inline"
	}
}

// Value returns the property declared directly on this node. Nothing is
// inherited and no defaults apply.
func (n *StyledNode) Value(name string) (css.Value, bool) {
	v, ok := n.Values[name]
	return v, ok
}

// Lookup returns name, else fallback, else def.
func (n *StyledNode) Lookup(name, fallback string, def css.Value) css.Value {
	if v, ok := n.Value(name); ok {
		return v
	}
	if v, ok := n.Value(fallback); ok {
		return v
	}
	return def
}

// Display classifies the node from its display property. Anything other
// than exactly the keywords block or none, including absence, is Inline.
func (n *StyledNode) Display() Display {
	v, _ := n.Value("display")
	switch v {
	case css.Keyword("block"):
		return Block
	case css.Keyword("none"):
		return None
	default:
		return Inline
	}
}
