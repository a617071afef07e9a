package registry

import "github.com/prefabric/prefabric/internal/core/value"

// Entity is the host runtime's addressable component container. The core
// never inspects entities; it only passes them through to capabilities and
// build commands, which downcast to whatever their runtime uses.
type Entity any

// Capability is the host-provided add/apply/has trio for one registered type.
// It is the only channel through which dynamic values reach real components.
//
// Add constructs a default instance of the type, overlays the fields present
// in v, and attaches the result to the entity. Apply overlays the fields
// present in v onto the entity's existing instance, leaving unmentioned
// fields untouched. v is nil for marker components written without braces.
type Capability interface {
	Add(e Entity, v *value.Composite) error
	Apply(e Entity, v *value.Composite) error
	Has(e Entity) bool
}

// BuildCommand is the pluggable extension point for entity initialization
// that cannot be expressed as literal text: resolving assets, inserting
// bundles, anything needing external data. Commands are registered under a
// name and invoked from `name!( ... )` steps.
//
// properties carries any fields written in the call, nil when the call had
// no arguments.
type BuildCommand interface {
	Run(properties *value.Composite, e Entity) error
}

// CommandFunc adapts a plain function to the BuildCommand interface.
type CommandFunc func(properties *value.Composite, e Entity) error

func (f CommandFunc) Run(properties *value.Composite, e Entity) error {
	return f(properties, e)
}
