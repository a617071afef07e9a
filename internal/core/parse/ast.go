package parse

import "github.com/prefabric/prefabric/internal/core/value"

// The parser is pure syntax: it produces this tree without consulting any
// type registry. Scalar literals are final dynamic values already; component
// literals stay as ordered field lists so a later stage can assemble them
// according to the destination type's structural shape.

// Prefab is the parsed form of one document.
type Prefab struct {
	// Name is the optional author-given prefab name, empty when the document
	// opens with a bare component.
	Name  string
	Steps []Step
}

// Step is one entry in a prefab body, in source order.
type Step interface {
	stepNode()
}

// ComponentNode is a `TypeName { field, ... }` step or a bare marker
// component without a body. It also appears nested as a field value.
type ComponentNode struct {
	TypeName string
	Fields   []FieldNode
	// HasBody distinguishes `Name {}` from a bare `Name` marker.
	HasBody bool
	Pos     Pos
}

// CommandNode is a `name!( ... )` build-command invocation.
type CommandNode struct {
	Name string
	// Args holds the call's fields. A component literal argument is
	// flattened into its fields.
	Args []FieldNode
	Pos  Pos
}

// LoadNode is a `load!(path)` nested-prefab reference.
type LoadNode struct {
	Path string
	Pos  Pos
}

func (*ComponentNode) stepNode() {}
func (*CommandNode) stepNode()   {}
func (*LoadNode) stepNode()      {}

// FieldNode is a `name: value` pair.
type FieldNode struct {
	Name  string
	Value ValueNode
	Pos   Pos
}

// ValueNode is either a final literal value or a nested component literal.
// Exactly one of Lit/Component is set.
type ValueNode struct {
	Lit       value.Value
	Component *ComponentNode
}

// IsComponent reports whether the node is a nested component literal.
func (v ValueNode) IsComponent() bool { return v.Component != nil }
