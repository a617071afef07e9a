package value

import "fmt"

// Kind indicates which payload a Value carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindChar
	KindString
	KindList
	KindRange
	KindVector3
	KindColor
	KindShapeName
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindRange:
		return "range"
	case KindVector3:
		return "vector3"
	case KindColor:
		return "color"
	case KindShapeName:
		return "shape"
	case KindComposite:
		return "composite"
	}
	return "invalid"
}

// Range is a half-open integer interval literal, written `(start..end)`.
type Range struct {
	Start int32
	End   int32
}

// Vector3 is a three-component float vector literal. Axes not written in the
// source default to zero.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Value is the dynamic runtime representation of every literal the grammar
// can produce. It is a tagged union: Kind selects which accessor returns the
// payload. Values are immutable once built.
type Value struct {
	kind Kind
	data any
}

func Int(i int32) Value           { return Value{kind: KindInt, data: i} }
func Float(f float32) Value       { return Value{kind: KindFloat, data: f} }
func Char(b byte) Value           { return Value{kind: KindChar, data: b} }
func Str(s string) Value          { return Value{kind: KindString, data: s} }
func List(items []Value) Value    { return Value{kind: KindList, data: items} }
func NewRange(r Range) Value      { return Value{kind: KindRange, data: r} }
func Vec3(v Vector3) Value        { return Value{kind: KindVector3, data: v} }
func NamedColor(c Color) Value    { return Value{kind: KindColor, data: c} }
func ShapeName(name string) Value { return Value{kind: KindShapeName, data: name} }

// Nested wraps a composite as a field value, enabling forms like
// `Transform { translation: Vec3 { .. } }`.
func Nested(c *Composite) Value { return Value{kind: KindComposite, data: c} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() (int32, bool) {
	i, ok := v.data.(int32)
	return i, ok && v.kind == KindInt
}

func (v Value) Float() (float32, bool) {
	f, ok := v.data.(float32)
	return f, ok && v.kind == KindFloat
}

func (v Value) Char() (byte, bool) {
	b, ok := v.data.(byte)
	return b, ok && v.kind == KindChar
}

func (v Value) Str() (string, bool) {
	s, ok := v.data.(string)
	return s, ok && v.kind == KindString
}

func (v Value) List() ([]Value, bool) {
	l, ok := v.data.([]Value)
	return l, ok && v.kind == KindList
}

func (v Value) Range() (Range, bool) {
	r, ok := v.data.(Range)
	return r, ok && v.kind == KindRange
}

func (v Value) Vector3() (Vector3, bool) {
	vec, ok := v.data.(Vector3)
	return vec, ok && v.kind == KindVector3
}

func (v Value) Color() (Color, bool) {
	c, ok := v.data.(Color)
	return c, ok && v.kind == KindColor
}

func (v Value) ShapeName() (string, bool) {
	s, ok := v.data.(string)
	return s, ok && v.kind == KindShapeName
}

func (v Value) Composite() (*Composite, bool) {
	c, ok := v.data.(*Composite)
	return c, ok && v.kind == KindComposite
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.data)
	case KindChar:
		return fmt.Sprintf("'%c'", v.data)
	case KindRange:
		r := v.data.(Range)
		return fmt.Sprintf("(%d..%d)", r.Start, r.End)
	case KindComposite:
		return v.data.(*Composite).String()
	case KindInvalid:
		return "<invalid>"
	}
	return fmt.Sprintf("%v", v.data)
}
