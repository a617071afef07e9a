package world

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prefabric/prefabric/internal/core/value"
)

type sprite struct {
	TexturePath string
	Color       value.Color
}

type transform struct {
	Translation value.Vector3
	Scale       value.Vector3
}

type particle struct {
	Speed    float32
	Lifetime value.Range
	Glyph    uint8
	Tags     []string
}

func structFields(t *testing.T, fields ...value.Field) *value.Composite {
	t.Helper()
	c, err := value.Build(value.ShapeStruct, fields)
	require.NoError(t, err)
	return c
}

func TestReflectedAdd(t *testing.T) {
	w := New()
	cap := Reflected[sprite]("Sprite")

	t.Run("nil composite attaches the zero value", func(t *testing.T) {
		e := w.Spawn()
		require.NoError(t, cap.Add(e, nil))
		got, ok := Component[sprite](e, "Sprite")
		require.True(t, ok)
		require.Equal(t, sprite{}, *got)
	})

	t.Run("snake_case names bind to exported fields", func(t *testing.T) {
		e := w.Spawn()
		c := structFields(t,
			value.Field{Name: "texture_path", Value: value.Str("alien.png")},
			value.Field{Name: "color", Value: value.NamedColor(value.ColorRed)},
		)
		require.NoError(t, cap.Add(e, c))
		got, _ := Component[sprite](e, "Sprite")
		require.Equal(t, sprite{TexturePath: "alien.png", Color: value.ColorRed}, *got)
	})

	t.Run("unknown field name fails", func(t *testing.T) {
		e := w.Spawn()
		c := structFields(t, value.Field{Name: "texxture", Value: value.Str("x")})
		err := cap.Add(e, c)
		require.Error(t, err)
		require.Contains(t, err.Error(), "texxture")
	})
}

func TestReflectedApply(t *testing.T) {
	w := New()
	cap := Reflected[sprite]("Sprite")

	t.Run("overlays only the mentioned fields", func(t *testing.T) {
		e := w.Spawn()
		e.Insert("Sprite", &sprite{TexturePath: "old.png", Color: value.ColorBlue})
		c := structFields(t, value.Field{Name: "texture_path", Value: value.Str("new.png")})
		require.NoError(t, cap.Apply(e, c))
		got, _ := Component[sprite](e, "Sprite")
		require.Equal(t, sprite{TexturePath: "new.png", Color: value.ColorBlue}, *got)
	})

	t.Run("fails without an existing component", func(t *testing.T) {
		e := w.Spawn()
		err := cap.Apply(e, structFields(t))
		require.Error(t, err)
	})
}

func TestReflectedHas(t *testing.T) {
	w := New()
	cap := Reflected[sprite]("Sprite")
	e := w.Spawn()
	require.False(t, cap.Has(e))
	require.NoError(t, cap.Add(e, nil))
	require.True(t, cap.Has(e))
}

func TestOverlayValueKinds(t *testing.T) {
	t.Run("vector3 literal assigns directly", func(t *testing.T) {
		var tr transform
		c := structFields(t,
			value.Field{Name: "translation", Value: value.Vec3(value.Vector3{X: 1, Y: 2, Z: 3})},
		)
		require.NoError(t, overlayInto(t, &tr, c))
		require.Equal(t, value.Vector3{X: 1, Y: 2, Z: 3}, tr.Translation)
		require.Equal(t, value.Vector3{}, tr.Scale)
	})

	t.Run("int promotes to float target", func(t *testing.T) {
		var p particle
		c := structFields(t, value.Field{Name: "speed", Value: value.Int(4)})
		require.NoError(t, overlayInto(t, &p, c))
		require.Equal(t, float32(4), p.Speed)
	})

	t.Run("range and char", func(t *testing.T) {
		var p particle
		c := structFields(t,
			value.Field{Name: "lifetime", Value: value.NewRange(value.Range{Start: 2, End: 8})},
			value.Field{Name: "glyph", Value: value.Char('@')},
		)
		require.NoError(t, overlayInto(t, &p, c))
		require.Equal(t, value.Range{Start: 2, End: 8}, p.Lifetime)
		require.Equal(t, uint8('@'), p.Glyph)
	})

	t.Run("list fills a slice", func(t *testing.T) {
		var p particle
		c := structFields(t, value.Field{Name: "tags", Value: value.List([]value.Value{
			value.Str("fire"), value.Str("smoke"),
		})})
		require.NoError(t, overlayInto(t, &p, c))
		require.Equal(t, []string{"fire", "smoke"}, p.Tags)
	})

	t.Run("nested composite overlays a struct field", func(t *testing.T) {
		var tr transform
		inner := structFields(t, value.Field{Name: "x", Value: value.Float(2.5)})
		c := structFields(t, value.Field{Name: "scale", Value: value.Nested(inner)})
		require.NoError(t, overlayInto(t, &tr, c))
		require.Equal(t, float32(2.5), tr.Scale.X)
	})

	t.Run("kind mismatch fails", func(t *testing.T) {
		var p particle
		c := structFields(t, value.Field{Name: "speed", Value: value.Str("fast")})
		require.Error(t, overlayInto(t, &p, c))
	})
}

func TestOverlayPositionalShapes(t *testing.T) {
	type wrap struct {
		A int32
		B string
	}
	c, err := value.Build(value.ShapeTupleStruct, []value.Field{
		{Value: value.Int(7)},
		{Value: value.Str("hi")},
	})
	require.NoError(t, err)

	var w wrap
	require.NoError(t, overlayInto(t, &w, c))
	require.Equal(t, wrap{A: 7, B: "hi"}, w)

	t.Run("too many values fails", func(t *testing.T) {
		c, err := value.Build(value.ShapeTuple, []value.Field{
			{Value: value.Int(1)}, {Value: value.Int(2)}, {Value: value.Int(3)},
		})
		require.NoError(t, err)
		var w wrap
		require.Error(t, overlayInto(t, &w, c))
	})
}

func overlayInto(t *testing.T, target any, c *value.Composite) error {
	t.Helper()
	return overlay(reflect.ValueOf(target).Elem(), c)
}
