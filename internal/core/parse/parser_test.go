package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prefabric/prefabric/internal/core/value"
)

func TestParseNamedPrefab(t *testing.T) {
	input := `MyPrefab {
	    Transform { translation: Vec3 { x: 15.0, y: 10.5 } },
	    Visible,
	    processor!(ColorMaterial { texture_path: "icon.png", color: Color::RED }),
	}`

	doc, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, "MyPrefab", doc.Name)
	require.Len(t, doc.Steps, 3)

	t.Run("component with nested Vec3", func(t *testing.T) {
		comp, ok := doc.Steps[0].(*ComponentNode)
		require.True(t, ok)
		require.Equal(t, "Transform", comp.TypeName)
		require.True(t, comp.HasBody)
		require.Len(t, comp.Fields, 1)
		require.Equal(t, "translation", comp.Fields[0].Name)

		vec, ok := comp.Fields[0].Value.Lit.Vector3()
		require.True(t, ok)
		require.Equal(t, value.Vector3{X: 15.0, Y: 10.5, Z: 0}, vec)
	})

	t.Run("marker component", func(t *testing.T) {
		comp, ok := doc.Steps[1].(*ComponentNode)
		require.True(t, ok)
		require.Equal(t, "Visible", comp.TypeName)
		require.False(t, comp.HasBody)
	})

	t.Run("command with flattened component literal", func(t *testing.T) {
		cmd, ok := doc.Steps[2].(*CommandNode)
		require.True(t, ok)
		require.Equal(t, "processor", cmd.Name)
		require.Len(t, cmd.Args, 2)
		require.Equal(t, "texture_path", cmd.Args[0].Name)

		path, ok := cmd.Args[0].Value.Lit.Str()
		require.True(t, ok)
		require.Equal(t, "icon.png", path, "quotes must be stripped")

		col, ok := cmd.Args[1].Value.Lit.Color()
		require.True(t, ok)
		require.Equal(t, value.ColorRed, col)
	})
}

func TestParseSingleComponentDocument(t *testing.T) {
	// `Pos { x: 2 }` is the component Pos, not a prefab named Pos: its body
	// opens with a field.
	doc, err := Parse(`Pos { x: 2 }`)
	require.NoError(t, err)
	require.Empty(t, doc.Name)
	require.Len(t, doc.Steps, 1)

	comp := doc.Steps[0].(*ComponentNode)
	require.Equal(t, "Pos", comp.TypeName)
	require.Len(t, comp.Fields, 1)

	i, ok := comp.Fields[0].Value.Lit.Int()
	require.True(t, ok)
	require.Equal(t, int32(2), i)
}

func TestParseValues(t *testing.T) {
	parseField := func(t *testing.T, src string) value.Value {
		t.Helper()
		doc, err := Parse(`T { f: ` + src + ` }`)
		require.NoError(t, err)
		comp := doc.Steps[0].(*ComponentNode)
		require.False(t, comp.Fields[0].Value.IsComponent())
		return comp.Fields[0].Value.Lit
	}

	t.Run("negative int", func(t *testing.T) {
		i, ok := parseField(t, "-42").Int()
		require.True(t, ok)
		require.Equal(t, int32(-42), i)
	})

	t.Run("float", func(t *testing.T) {
		f, ok := parseField(t, "3.25").Float()
		require.True(t, ok)
		require.InDelta(t, 3.25, f, 1e-6)
	})

	t.Run("char stores byte value", func(t *testing.T) {
		b, ok := parseField(t, `'@'`).Char()
		require.True(t, ok)
		require.Equal(t, byte('@'), b)
	})

	t.Run("string", func(t *testing.T) {
		s, ok := parseField(t, `"Hello"`).Str()
		require.True(t, ok)
		require.Equal(t, "Hello", s)
	})

	t.Run("range", func(t *testing.T) {
		r, ok := parseField(t, "(5..10)").Range()
		require.True(t, ok)
		require.Equal(t, value.Range{Start: 5, End: 10}, r)
	})

	t.Run("array", func(t *testing.T) {
		items, ok := parseField(t, "[1, 2, 3,]").List()
		require.True(t, ok)
		require.Len(t, items, 3)
		last, _ := items[2].Int()
		require.Equal(t, int32(3), last)
	})

	t.Run("vec3 axes in any order with defaults", func(t *testing.T) {
		vec, ok := parseField(t, "Vec3 { z: 3.0, x: 10.0 }").Vector3()
		require.True(t, ok)
		require.Equal(t, value.Vector3{X: 10.0, Y: 0, Z: 3.0}, vec)
	})

	t.Run("shape literal", func(t *testing.T) {
		s, ok := parseField(t, "shape::Cube").ShapeName()
		require.True(t, ok)
		require.Equal(t, "Cube", s)
	})
}

func TestParseNestedComponentValue(t *testing.T) {
	doc, err := Parse(`Transform { translation: Offset { x: 1.0 } }`)
	require.NoError(t, err)
	comp := doc.Steps[0].(*ComponentNode)
	nested := comp.Fields[0].Value
	require.True(t, nested.IsComponent())
	require.Equal(t, "Offset", nested.Component.TypeName)
}

func TestParseLoadStep(t *testing.T) {
	for _, src := range []string{
		`Outer { load!("base.prefab") }`,
		`Outer { load!(base.prefab) }`,
	} {
		doc, err := Parse(src)
		require.NoError(t, err, src)
		require.Len(t, doc.Steps, 1)
		load, ok := doc.Steps[0].(*LoadNode)
		require.True(t, ok)
		require.Equal(t, "base.prefab", load.Path)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		rule  string
	}{
		{"unknown color", `T { c: Color::BEIGE }`, "color"},
		{"unknown shape", `T { s: shape::Torus }`, "shape"},
		{"unknown namespace", `T { s: mesh::Cube }`, "value"},
		{"missing value", `T { x: }`, "value"},
		{"missing colon", `T { x 5 }`, ""},
		{"unterminated body", `T { x: 5`, ""},
		{"step where field expected", `P { T { x: 5 }, y: 2 }`, ""},
		{"unknown vec3 axis", `T { v: Vec3 { w: 1.0 } }`, "vec3"},
		{"trailing garbage", `T { x: 5 } extra`, "prefab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			require.NotZero(t, perr.Pos.Line)
			if tc.rule != "" {
				require.Equal(t, tc.rule, perr.Rule)
			}
		})
	}
}

func TestParseCommentsAndCommas(t *testing.T) {
	doc, err := Parse(`
	// a sprite with a trailing comma after every step
	Bird {
	    Visible,   // marker
	    Pos { x: 1, y: 2, },
	}`)
	require.NoError(t, err)
	require.Equal(t, "Bird", doc.Name)
	require.Len(t, doc.Steps, 2)
}

func TestParseEmptyBody(t *testing.T) {
	doc, err := Parse(`Empty { }`)
	require.NoError(t, err)
	require.Equal(t, "Empty", doc.Name)
	require.Empty(t, doc.Steps)
}
