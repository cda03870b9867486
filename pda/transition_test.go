package pda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable_Add(t *testing.T) {
	tab := TransitionTable{}
	tab.Add("q0", "a", "0", "q1", "0", "1")

	mv, ok := tab[TransitionKey{State: "q0", Input: "a", Top: "0"}]
	require.True(t, ok)
	assert.Equal(t, State("q1"), mv.Next)
	assert.Equal(t, []StackSymbol{"0", "1"}, mv.Push)

	// Adding to an occupied key replaces the move.
	tab.Add("q0", "a", "0", "q2")
	mv = tab[TransitionKey{State: "q0", Input: "a", Top: "0"}]
	assert.Equal(t, State("q2"), mv.Next)
	assert.Empty(t, mv.Push)
	assert.Len(t, tab, 1)
}

func TestTransitionTable_Copy(t *testing.T) {
	tab := TransitionTable{}
	tab.Add("q0", "a", "0", "q1", "0", "1")
	tab.Add("q2", Lambda, "0", "q3", "0")

	c := tab.Copy()
	require.True(t, tab.Equal(c))

	c.Add("q1", "b", "1", "q2")
	assert.False(t, tab.Equal(c))
	assert.Len(t, tab, 2)

	// Push slices must not be shared either.
	c[TransitionKey{State: "q0", Input: "a", Top: "0"}].Push[0] = "9"
	assert.Equal(t, []StackSymbol{"0", "1"}, tab[TransitionKey{State: "q0", Input: "a", Top: "0"}].Push)
}

func TestTransitionKey_String(t *testing.T) {
	tests := []struct {
		caption string
		key     TransitionKey
		want    string
	}{
		{
			caption: "a symbol move",
			key:     TransitionKey{State: "q0", Input: "a", Top: "0"},
			want:    "q0 a 0",
		},
		{
			caption: "a lambda move spells its input _",
			key:     TransitionKey{State: "q2", Input: Lambda, Top: "0"},
			want:    "q2 _ 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "q1 0 1", Move{Next: "q1", Push: []StackSymbol{"0", "1"}}.String())
	assert.Equal(t, "q2", Move{Next: "q2"}.String())
}
