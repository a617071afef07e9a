package value

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedShape is returned when a composite is built with a shape
	// that has no literal form (List, Map, Value).
	ErrUnsupportedShape = errors.New("unsupported composite shape")
	// ErrFieldMissing is returned by typed getters for an absent field.
	ErrFieldMissing = errors.New("field not present")
	// ErrWrongKind is returned by typed getters when the field holds a
	// different kind of value.
	ErrWrongKind = errors.New("field has wrong kind")
)

// Field is a single name/value pair on a composite. Name is empty for fields
// of positional shapes.
type Field struct {
	Name  string
	Value Value
}

// Composite is a structurally-typed aggregate of fields. Field order is the
// source encounter order and is preserved. Whether names are meaningful
// depends on the shape: Struct keys by name, TupleStruct and Tuple are
// positional.
//
// A composite never validates its field names against the destination type;
// mismatches surface when a capability applies the value onto a real
// component.
type Composite struct {
	shape  Shape
	fields []Field
}

// Build assembles a composite from parsed fields according to the structural
// shape of the destination type. Struct inserts by name, replacing an earlier
// field with the same name. TupleStruct and Tuple append positionally and
// drop field names. The remaining shapes have no literal form.
func Build(shape Shape, fields []Field) (*Composite, error) {
	c := &Composite{shape: shape}
	switch shape {
	case ShapeStruct:
		for _, f := range fields {
			c.setNamed(f.Name, f.Value)
		}
	case ShapeTupleStruct, ShapeTuple:
		for _, f := range fields {
			c.fields = append(c.fields, Field{Value: f.Value})
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, shape)
	}
	return c, nil
}

// NewStruct builds a named-field composite. The Struct shape accepts any
// field list, so no error is possible. Convenient for command properties.
func NewStruct(fields ...Field) *Composite {
	c, _ := Build(ShapeStruct, fields)
	return c
}

func (c *Composite) setNamed(name string, v Value) {
	for i := range c.fields {
		if c.fields[i].Name == name {
			c.fields[i].Value = v
			return
		}
	}
	c.fields = append(c.fields, Field{Name: name, Value: v})
}

func (c *Composite) Shape() Shape    { return c.shape }
func (c *Composite) Len() int        { return len(c.fields) }
func (c *Composite) Fields() []Field { return c.fields }

// Field returns the value stored under name, for named shapes.
func (c *Composite) Field(name string) (Value, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// At returns the value at a positional index.
func (c *Composite) At(i int) (Value, bool) {
	if i < 0 || i >= len(c.fields) {
		return Value{}, false
	}
	return c.fields[i].Value, true
}

// Typed getters, the tolerant lookup used by build commands to read optional
// properties. All return ErrFieldMissing or ErrWrongKind wrapped with the
// field name.

func (c *Composite) GetString(name string) (string, error) {
	v, ok := c.Field(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	s, ok := v.Str()
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, want string", ErrWrongKind, name, v.Kind())
	}
	return s, nil
}

func (c *Composite) GetInt(name string) (int32, error) {
	v, ok := c.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	i, ok := v.Int()
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s, want int", ErrWrongKind, name, v.Kind())
	}
	return i, nil
}

func (c *Composite) GetFloat(name string) (float32, error) {
	v, ok := c.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	f, ok := v.Float()
	if !ok {
		// ints promote to float for convenience in hand-written files
		if i, iok := v.Int(); iok {
			return float32(i), nil
		}
		return 0, fmt.Errorf("%w: %s is %s, want float", ErrWrongKind, name, v.Kind())
	}
	return f, nil
}

func (c *Composite) GetColor(name string) (Color, error) {
	v, ok := c.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	col, ok := v.Color()
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s, want color", ErrWrongKind, name, v.Kind())
	}
	return col, nil
}

func (c *Composite) GetVector3(name string) (Vector3, error) {
	v, ok := c.Field(name)
	if !ok {
		return Vector3{}, fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	vec, ok := v.Vector3()
	if !ok {
		return Vector3{}, fmt.Errorf("%w: %s is %s, want vector3", ErrWrongKind, name, v.Kind())
	}
	return vec, nil
}

func (c *Composite) GetShapeName(name string) (string, error) {
	v, ok := c.Field(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	s, ok := v.ShapeName()
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, want shape", ErrWrongKind, name, v.Kind())
	}
	return s, nil
}

func (c *Composite) GetComposite(name string) (*Composite, error) {
	v, ok := c.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldMissing, name)
	}
	nested, ok := v.Composite()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, want composite", ErrWrongKind, name, v.Kind())
	}
	return nested, nil
}

func (c *Composite) String() string {
	var b strings.Builder
	b.WriteString(c.shape.String())
	b.WriteByte('{')
	for i, f := range c.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if f.Name != "" {
			b.WriteString(f.Name)
			b.WriteString(": ")
		}
		b.WriteString(f.Value.String())
	}
	b.WriteByte('}')
	return b.String()
}
