package css

import (
	"fmt"
	"strconv"
)

// Value is a declared property value: a Keyword, a Length or a Color.
// All variants are comparable, so two values are equal iff ==.
type Value interface {
	fmt.Stringer
	isValue()
}

// Keyword is an identifier value such as "block" or "red".
type Keyword string

// Length is a numeric value with a unit.
type Length struct {
	Amount float64
	Unit   Unit
}

// Color is an RGBA color. Parsed hex colors always have A == 255.
type Color struct {
	R, G, B, A uint8
}

// Unit is the unit of a Length.
type Unit int

// Supported units.
const (
	Px Unit = iota
)

func (Keyword) isValue() {}
func (Length) isValue()  {}
func (Color) isValue()   {}

func (k Keyword) String() string { return string(k) }

func (l Length) String() string {
	return strconv.FormatFloat(l.Amount, 'f', -1, 64) + l.Unit.String()
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ToPx returns the length in pixels. Every supported unit is absolute.
func (l Length) ToPx() float64 {
	switch l.Unit {
	case Px:
		return l.Amount
	default:
		return 0
	}
}
