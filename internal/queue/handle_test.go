package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClonesShareState implements spec.md §8 scenario S6: state mutated
// through one handle must be visible through an independently held clone,
// since both observe the same underlying index.
func TestClonesShareState(t *testing.T) {
	a := New()
	b := a.Clone()

	_, err := a.Update("z", 100)
	require.NoError(t, err)

	id, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, "z", id)

	got, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "z", got)

	_, ok = b.Score("z")
	assert.False(t, ok, "z was removed via handle a, must be gone via handle b too")
}
