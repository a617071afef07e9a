package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorldLifecycle(t *testing.T) {
	w := New()
	require.Equal(t, 0, w.Len())

	a := w.Spawn()
	b := w.Spawn()
	require.Equal(t, 2, w.Len())
	require.NotEqual(t, a.ID(), b.ID())

	w.Despawn(a)
	require.Equal(t, 1, w.Len())

	// inserts on a despawned entity are dropped, not resurrected
	a.Insert("Ghost", &struct{}{})
	require.False(t, a.Has("Ghost"))
	require.Equal(t, 1, w.Len())
}

func TestEntityComponents(t *testing.T) {
	type health struct{ HP int32 }

	w := New()
	e := w.Spawn()
	require.False(t, e.Has("Health"))

	e.Insert("Health", &health{HP: 10})
	e.Insert("Visible", &struct{}{})

	got, ok := Component[health](e, "Health")
	require.True(t, ok)
	require.Equal(t, int32(10), got.HP)

	// stored by pointer, mutations stick
	got.HP = 3
	again, _ := Component[health](e, "Health")
	require.Equal(t, int32(3), again.HP)

	e.Insert("Health", &health{HP: 99})
	replaced, _ := Component[health](e, "Health")
	require.Equal(t, int32(99), replaced.HP)

	require.Equal(t, []string{"Health", "Visible"}, e.TypeNames())

	_, ok = Component[struct{ X int }](e, "Health")
	require.False(t, ok, "wrong type parameter misses")
}

func TestCast(t *testing.T) {
	w := New()
	e := w.Spawn()

	got, err := Cast(e)
	require.NoError(t, err)
	require.Same(t, e, got)

	_, err = Cast("not an entity")
	require.Error(t, err)
}
