package world

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/prefabric/prefabric/internal/core/registry"
	"github.com/prefabric/prefabric/internal/core/value"
)

// Reflected builds a registry.Capability for a plain Go struct type T. Add
// instantiates the zero value of T, overlays the fields named in the
// composite and attaches the result; Apply overlays onto the entity's
// existing instance, leaving unmentioned fields untouched.
//
// Prefab field names are matched against Go field names case-insensitively
// with underscores ignored, so `texture_path` binds to TexturePath. A field
// name that matches nothing on T is an error — this is where the deferred
// field validation of the two-phase design finally happens.
func Reflected[T any](name string) registry.Capability {
	return reflected[T]{name: name}
}

type reflected[T any] struct {
	name string
}

func (r reflected[T]) Add(e registry.Entity, v *value.Composite) error {
	ent, err := Cast(e)
	if err != nil {
		return err
	}
	comp := new(T)
	if v != nil {
		if err := overlay(reflect.ValueOf(comp).Elem(), v); err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
	}
	ent.Insert(r.name, comp)
	return nil
}

func (r reflected[T]) Apply(e registry.Entity, v *value.Composite) error {
	ent, err := Cast(e)
	if err != nil {
		return err
	}
	existing, ok := Component[T](ent, r.name)
	if !ok {
		return fmt.Errorf("%s: entity has no component to apply onto", r.name)
	}
	if v == nil {
		return nil
	}
	if err := overlay(reflect.ValueOf(existing).Elem(), v); err != nil {
		return fmt.Errorf("%s: %w", r.name, err)
	}
	return nil
}

func (r reflected[T]) Has(e registry.Entity) bool {
	ent, err := Cast(e)
	if err != nil {
		return false
	}
	return ent.Has(r.name)
}

// overlay writes the composite's fields onto a struct value: by matched name
// for the Struct shape, by declaration order for the positional shapes.
func overlay(rv reflect.Value, c *value.Composite) error {
	switch c.Shape() {
	case value.ShapeStruct:
		for _, f := range c.Fields() {
			target := fieldByName(rv, f.Name)
			if !target.IsValid() {
				return fmt.Errorf("no field %q on %s", f.Name, rv.Type())
			}
			if err := setValue(target, f.Value); err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
		}
	case value.ShapeTupleStruct, value.ShapeTuple:
		for i, f := range c.Fields() {
			if i >= rv.NumField() {
				return fmt.Errorf("%s has %d fields, got %d values", rv.Type(), rv.NumField(), c.Len())
			}
			if err := setValue(rv.Field(i), f.Value); err != nil {
				return fmt.Errorf("field %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: %s", value.ErrUnsupportedShape, c.Shape())
	}
	return nil
}

func normalizeFieldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

func fieldByName(rv reflect.Value, name string) reflect.Value {
	t := rv.Type()
	want := normalizeFieldName(name)
	for i := 0; i < t.NumField(); i++ {
		if normalizeFieldName(t.Field(i).Name) == want && rv.Field(i).CanSet() {
			return rv.Field(i)
		}
	}
	return reflect.Value{}
}

func setValue(target reflect.Value, v value.Value) error {
	// literal struct types (Vector3, Range, Color, ...) assign directly
	if rv := literalValue(v); rv.IsValid() && rv.Type().AssignableTo(target.Type()) {
		target.Set(rv)
		return nil
	}

	switch v.Kind() {
	case value.KindInt:
		i, _ := v.Int()
		switch target.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			target.SetInt(int64(i))
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			target.SetUint(uint64(i))
			return nil
		case reflect.Float32, reflect.Float64:
			target.SetFloat(float64(i))
			return nil
		}
	case value.KindFloat:
		f, _ := v.Float()
		switch target.Kind() {
		case reflect.Float32, reflect.Float64:
			target.SetFloat(float64(f))
			return nil
		}
	case value.KindChar:
		b, _ := v.Char()
		switch target.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
			target.SetUint(uint64(b))
			return nil
		case reflect.Int32, reflect.Int64, reflect.Int:
			target.SetInt(int64(b))
			return nil
		}
	case value.KindString, value.KindShapeName:
		var s string
		if v.Kind() == value.KindString {
			s, _ = v.Str()
		} else {
			s, _ = v.ShapeName()
		}
		if target.Kind() == reflect.String {
			target.SetString(s)
			return nil
		}
	case value.KindList:
		items, _ := v.List()
		if target.Kind() == reflect.Slice {
			slice := reflect.MakeSlice(target.Type(), len(items), len(items))
			for i, item := range items {
				if err := setValue(slice.Index(i), item); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			target.Set(slice)
			return nil
		}
	case value.KindComposite:
		nested, _ := v.Composite()
		if target.Kind() == reflect.Struct {
			return overlay(target, nested)
		}
		if target.Kind() == reflect.Pointer && target.Type().Elem().Kind() == reflect.Struct {
			if target.IsNil() {
				target.Set(reflect.New(target.Type().Elem()))
			}
			return overlay(target.Elem(), nested)
		}
	}
	return fmt.Errorf("cannot store %s value into %s", v.Kind(), target.Type())
}

// literalValue exposes the struct-typed literal payloads for direct
// assignment.
func literalValue(v value.Value) reflect.Value {
	switch v.Kind() {
	case value.KindVector3:
		vec, _ := v.Vector3()
		return reflect.ValueOf(vec)
	case value.KindRange:
		r, _ := v.Range()
		return reflect.ValueOf(r)
	case value.KindColor:
		c, _ := v.Color()
		return reflect.ValueOf(c)
	}
	return reflect.Value{}
}
