package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemResolver(t *testing.T) {
	res := NewMemResolver()

	a, err := res.Resolve("alien.png")
	require.NoError(t, err)
	b, err := res.Resolve("bird.png")
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	t.Run("same path yields the same handle", func(t *testing.T) {
		again, err := res.Resolve("alien.png")
		require.NoError(t, err)
		require.Equal(t, a, again)
	})

	t.Run("every request is recorded in order", func(t *testing.T) {
		require.Equal(t, []string{"alien.png", "bird.png", "alien.png"}, res.Requests())
	})

	t.Run("handle carries its path", func(t *testing.T) {
		h, ok := a.(MemHandle)
		require.True(t, ok)
		require.Equal(t, "alien.png", h.Path)
	})
}
