package prefab

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/prefabric/prefabric/internal/core/parse"
	"github.com/prefabric/prefabric/internal/core/registry"
	"github.com/prefabric/prefabric/internal/core/value"
)

// Build parses source text and resolves it against the registry into a
// Document. Every type and command the text references must already be
// registered; the first unresolved name fails the whole build and no partial
// document is produced.
func Build(text string, reg *registry.Registry) (*Document, error) {
	tree, err := parse.Parse(text)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		name:        tree.Name,
		fingerprint: xxhash.Sum64String(text),
	}
	for _, st := range tree.Steps {
		step, err := buildStep(st, reg)
		if err != nil {
			return nil, err
		}
		doc.steps = append(doc.steps, step)
	}
	return doc, nil
}

func buildStep(st parse.Step, reg *registry.Registry) (Step, error) {
	switch node := st.(type) {
	case *parse.ComponentNode:
		td, ok := reg.TypeInfo(node.TypeName)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnregisteredComponent, node.TypeName)
		}
		var comp *value.Composite
		if node.HasBody {
			var err error
			comp, err = buildComposite(td.Shape, node.Fields, reg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", node.TypeName, err)
			}
		}
		return AddComponent{TypeName: node.TypeName, Value: comp}, nil

	case *parse.CommandNode:
		if _, ok := reg.Command(node.Name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnregisteredCommand, node.Name)
		}
		var props *value.Composite
		if len(node.Args) > 0 {
			var err error
			props, err = buildComposite(value.ShapeStruct, node.Args, reg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", node.Name, err)
			}
		}
		return RunCommand{CommandName: node.Name, Properties: props}, nil

	case *parse.LoadNode:
		return LoadNested{Path: node.Path}, nil
	}
	return nil, fmt.Errorf("unhandled step node %T", st)
}

// buildComposite assembles parsed fields into a composite of the given
// shape, recursing into nested component literals. A nested component uses
// the shape its type was registered with; unregistered nested types fall
// back to a named-field composite, since field validity is only checked when
// a capability applies the value.
func buildComposite(shape value.Shape, nodes []parse.FieldNode, reg *registry.Registry) (*value.Composite, error) {
	fields := make([]value.Field, 0, len(nodes))
	for _, fn := range nodes {
		v, err := buildValue(fn.Value, reg)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fn.Name, err)
		}
		fields = append(fields, value.Field{Name: fn.Name, Value: v})
	}
	return value.Build(shape, fields)
}

func buildValue(vn parse.ValueNode, reg *registry.Registry) (value.Value, error) {
	if !vn.IsComponent() {
		return vn.Lit, nil
	}
	shape := value.ShapeStruct
	if td, ok := reg.TypeInfo(vn.Component.TypeName); ok {
		shape = td.Shape
	}
	nested, err := buildComposite(shape, vn.Component.Fields, reg)
	if err != nil {
		return value.Value{}, fmt.Errorf("%s: %w", vn.Component.TypeName, err)
	}
	return value.Nested(nested), nil
}
