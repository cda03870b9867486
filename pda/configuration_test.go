package pda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfiguration_Equal(t *testing.T) {
	tests := []struct {
		caption string
		c1      Configuration
		c2      Configuration
		equal   bool
	}{
		{
			caption: "identical snapshots are equal",
			c1:      NewConfiguration("q1", Symbols("abb"), NewStack("1", "0")),
			c2:      NewConfiguration("q1", Symbols("abb"), NewStack("1", "0")),
			equal:   true,
		},
		{
			caption: "nil and empty remaining input are the same thing",
			c1:      NewConfiguration("q1", nil, NewStack("0")),
			c2:      NewConfiguration("q1", []InputSymbol{}, NewStack("0")),
			equal:   true,
		},
		{
			caption: "different states",
			c1:      NewConfiguration("q1", Symbols("ab"), NewStack("0")),
			c2:      NewConfiguration("q2", Symbols("ab"), NewStack("0")),
		},
		{
			caption: "different remaining input",
			c1:      NewConfiguration("q1", Symbols("ab"), NewStack("0")),
			c2:      NewConfiguration("q1", Symbols("b"), NewStack("0")),
		},
		{
			caption: "different stacks",
			c1:      NewConfiguration("q1", Symbols("ab"), NewStack("1", "0")),
			c2:      NewConfiguration("q1", Symbols("ab"), NewStack("0", "1")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.c1.Equal(tt.c2))
			assert.Equal(t, tt.equal, tt.c2.Equal(tt.c1))
		})
	}
}

func TestConfiguration_RemainingIsACopy(t *testing.T) {
	in := Symbols("ab")
	c := NewConfiguration("q0", in, NewStack("0"))

	in[0] = "x"
	assert.Equal(t, []InputSymbol{"a", "b"}, c.Remaining())

	r := c.Remaining()
	r[0] = "y"
	assert.Equal(t, []InputSymbol{"a", "b"}, c.Remaining())
}

func TestConfiguration_String(t *testing.T) {
	c := NewConfiguration("q1", Symbols("abb"), NewStack("1", "0"))
	assert.Equal(t, `(q1, "abb", Stack("1", "0"))`, c.String())

	empty := NewConfiguration("q0", nil, NewStack())
	assert.Equal(t, `(q0, "", Stack())`, empty.String())
}
