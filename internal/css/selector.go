package css

// Selector is a parsed selector. Simple is currently the only variant;
// combinator selectors would be added as further variants.
type Selector interface {
	Specificity() Specificity
	isSelector()
}

// Simple is a selector made of an optional tag, an optional id and any
// number of classes. An empty Tag or ID means the component is absent.
type Simple struct {
	Tag     string
	ID      string
	Classes []string
}

func (Simple) isSelector() {}

// Specificity returns (ids, classes, types) for the selector. The universal
// selector contributes nothing.
func (s Simple) Specificity() Specificity {
	var spec Specificity
	if s.ID != "" {
		spec[0] = 1
	}
	spec[1] = len(s.Classes)
	if s.Tag != "" {
		spec[2] = 1
	}
	return spec
}

// Specificity ranks selectors as [ids, classes, types]. Comparison is
// lexicographic; the components are never combined into one number.
type Specificity [3]int

// Compare returns -1, 0 or 1 as s is less than, equal to or greater than o.
func (s Specificity) Compare(o Specificity) int {
	for i := range s {
		switch {
		case s[i] < o[i]:
			return -1
		case s[i] > o[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether s ranks strictly below o.
func (s Specificity) Less(o Specificity) bool {
	return s.Compare(o) < 0
}
