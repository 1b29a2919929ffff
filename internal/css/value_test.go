package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Keyword("block"), "block"},
		{Length{Amount: 12, Unit: Px}, "12px"},
		{Length{Amount: 0.5, Unit: Px}, "0.5px"},
		{Color{R: 255, G: 128, B: 0, A: 255}, "#ff8000"},
		{Color{R: 1, G: 2, B: 3, A: 4}, "rgba(1, 2, 3, 4)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueEquality(t *testing.T) {
	var a, b Value = Length{Amount: 1, Unit: Px}, Length{Amount: 1, Unit: Px}
	assert.True(t, a == b)

	assert.False(t, Value(Keyword("1px")) == Value(Length{Amount: 1, Unit: Px}))
	assert.False(t, Value(Color{A: 255}) == Value(Color{}))

	// Copies do not alias.
	c := Color{R: 10, A: 255}
	d := c
	d.R = 20
	assert.Equal(t, uint8(10), c.R)
}

func TestLengthToPx(t *testing.T) {
	assert.Equal(t, 4.5, Length{Amount: 4.5, Unit: Px}.ToPx())
	assert.Equal(t, "px", Px.String())
}
