package style

import (
	"sort"

	"go.uber.org/zap"

	"github.com/babalolajnr/webwraith/internal/css"
	"github.com/babalolajnr/webwraith/internal/dom"
)

// Matches reports whether sel matches elem.
func Matches(elem dom.ElementData, sel css.Selector) bool {
	switch s := sel.(type) {
	case css.Simple:
		return matchesSimple(elem, s)
	default:
		return false
	}
}

func matchesSimple(elem dom.ElementData, sel css.Simple) bool {
	if sel.Tag != "" && sel.Tag != elem.TagName {
		return false
	}
	if sel.ID != "" {
		if id, ok := elem.ID(); !ok || id != sel.ID {
			return false
		}
	}
	if len(sel.Classes) > 0 {
		classes := elem.Classes()
		for _, c := range sel.Classes {
			if _, ok := classes[c]; !ok {
				return false
			}
		}
	}
	return true
}

// MatchedRule is a rule that applies to an element, with the specificity
// of the selector that matched.
type MatchedRule struct {
	Specificity css.Specificity
	Rule        *css.Rule
}

// MatchRule tests the rule's selectors in order and reports the first that
// matches. Selectors are stored most specific first, so this is the
// highest specificity the rule achieves for elem.
func MatchRule(elem dom.ElementData, rule *css.Rule) (MatchedRule, bool) {
	for _, sel := range rule.Selectors {
		if Matches(elem, sel) {
			return MatchedRule{Specificity: sel.Specificity(), Rule: rule}, true
		}
	}
	return MatchedRule{}, false
}

// MatchingRules returns every rule of sheet that matches elem, in
// stylesheet order.
func MatchingRules(elem dom.ElementData, sheet *css.Stylesheet) []MatchedRule {
	var matched []MatchedRule
	for i := range sheet.Rules {
		if m, ok := MatchRule(elem, &sheet.Rules[i]); ok {
			matched = append(matched, m)
		}
	}
	return matched
}

// SpecifiedValues cascades the matching rules of sheet for elem. Higher
// specificity wins; equal specificity falls back to stylesheet order, and
// within a rule the last declaration of a property wins.
func SpecifiedValues(elem dom.ElementData, sheet *css.Stylesheet) PropertyMap {
	values := PropertyMap{}
	matched := MatchingRules(elem, sheet)

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Specificity.Less(matched[j].Specificity)
	})

	for _, m := range matched {
		for _, decl := range m.Rule.Declarations {
			values[decl.Name] = decl.Value
		}
	}
	return values
}

// Resolver builds style trees. It holds no per-document state, so one
// Resolver may serve concurrent calls.
type Resolver struct {
	log *zap.Logger
}

// NewResolver creates a resolver. A nil logger disables logging.
func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{log: log.Named("resolver")}
}

// Resolve returns the style tree for doc. The result has one StyledNode for
// every node reachable from the document root, in the same shape. Text and
// comment nodes get an empty PropertyMap.
func (r *Resolver) Resolve(doc *dom.Document, sheet *css.Stylesheet) *StyledNode {
	var count int
	root := r.resolveNode(doc, sheet, doc.Root(), &count)

	r.log.Debug("Resolved style tree",
		zap.Int("nodes", count),
		zap.Int("rules", len(sheet.Rules)))
	return root
}

func (r *Resolver) resolveNode(doc *dom.Document, sheet *css.Stylesheet, id dom.NodeID, count *int) *StyledNode {
	*count++
	n := doc.Node(id)

	var values PropertyMap
	if n.Kind == dom.ElementNode {
		values = SpecifiedValues(n.Element, sheet)
	} else {
		values = PropertyMap{}
	}

	styled := &StyledNode{
		Node:     id,
		Values:   values,
		Children: make([]*StyledNode, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		styled.Children = append(styled.Children, r.resolveNode(doc, sheet, child, count))
	}
	return styled
}

// StyleTree resolves doc against sheet without logging.
func StyleTree(doc *dom.Document, sheet *css.Stylesheet) *StyledNode {
	return NewResolver(nil).Resolve(doc, sheet)
}
