package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prefabric/prefabric/internal/core/value"
)

type nopCapability struct{}

func (nopCapability) Add(Entity, *value.Composite) error   { return nil }
func (nopCapability) Apply(Entity, *value.Composite) error { return nil }
func (nopCapability) Has(Entity) bool                      { return false }

func TestRegistry(t *testing.T) {
	reg := New()

	t.Run("type lookup misses before registration", func(t *testing.T) {
		_, ok := reg.TypeInfo("Transform")
		require.False(t, ok)
	})

	t.Run("register and look up a type", func(t *testing.T) {
		reg.RegisterType("Transform", value.ShapeStruct, nopCapability{})
		td, ok := reg.TypeInfo("Transform")
		require.True(t, ok)
		require.Equal(t, "Transform", td.Name)
		require.Equal(t, value.ShapeStruct, td.Shape)
		require.NotNil(t, td.Capability)
	})

	t.Run("registration overwrites", func(t *testing.T) {
		reg.RegisterType("Transform", value.ShapeTupleStruct, nopCapability{})
		td, _ := reg.TypeInfo("Transform")
		require.Equal(t, value.ShapeTupleStruct, td.Shape)
	})

	t.Run("commands", func(t *testing.T) {
		_, ok := reg.Command("boom")
		require.False(t, ok)

		called := false
		reg.RegisterCommand("boom", CommandFunc(func(*value.Composite, Entity) error {
			called = true
			return nil
		}))

		cmd, ok := reg.Command("boom")
		require.True(t, ok)
		require.NoError(t, cmd.Run(nil, nil))
		require.True(t, called)
	})

	t.Run("sorted name listings", func(t *testing.T) {
		reg.RegisterType("Alpha", value.ShapeStruct, nopCapability{})
		require.Equal(t, []string{"Alpha", "Transform"}, reg.Types())
		require.Equal(t, []string{"boom"}, reg.Commands())
	})
}
