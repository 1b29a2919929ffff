// Package css implements the stylesheet grammar: its value and selector
// model, and a parser producing an immutable Stylesheet.
package css

// Stylesheet is an ordered list of rules. Rule order is source order and
// breaks specificity ties during the cascade. A Stylesheet must not be
// modified once parsed.
type Stylesheet struct {
	Rules []Rule
}

// Rule pairs a selector list with a declaration block. Selectors are sorted
// by descending specificity, ties keeping source order. Declarations keep
// source order and may repeat a property; the last one wins.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Declaration is a single "name: value;" entry.
type Declaration struct {
	Name  string
	Value Value
}

// Concat joins stylesheets into one, keeping each sheet's rules in order and
// the sheets in argument order. Rules are shared, not copied.
func Concat(sheets ...*Stylesheet) *Stylesheet {
	n := 0
	for _, s := range sheets {
		if s != nil {
			n += len(s.Rules)
		}
	}

	out := &Stylesheet{Rules: make([]Rule, 0, n)}
	for _, s := range sheets {
		if s != nil {
			out.Rules = append(out.Rules, s.Rules...)
		}
	}
	return out
}
