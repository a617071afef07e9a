package prefab

import "github.com/prefabric/prefabric/internal/core/value"

// Step is one build instruction of a document. Steps are stored and executed
// in source order; order is load-bearing.
type Step interface {
	buildStep()
}

// AddComponent attaches or overlays one component. Value is nil for marker
// components written without a body.
type AddComponent struct {
	TypeName string
	Value    *value.Composite
}

// RunCommand invokes a named build command. Properties is nil when the call
// had no arguments.
type RunCommand struct {
	CommandName string
	Properties  *value.Composite
}

// LoadNested splices another prefab's steps in at this position. Only the
// path is stored; the referenced document is resolved when the assembler
// reaches the step.
type LoadNested struct {
	Path string
}

func (AddComponent) buildStep() {}
func (RunCommand) buildStep()   {}
func (LoadNested) buildStep()   {}

// Document is one parsed prefab: an optional author-given name and an
// ordered step list. Immutable once parsed, shared by pointer between all
// spawns that reference the same path.
type Document struct {
	name        string
	path        string
	steps       []Step
	fingerprint uint64
}

// Name returns the author-given prefab name, empty when the document opened
// with a bare component.
func (d *Document) Name() string { return d.name }

// Path returns the cache key the document was loaded under. Empty for
// documents built directly from text.
func (d *Document) Path() string { return d.path }

func (d *Document) Steps() []Step { return d.steps }

// Fingerprint is the xxhash of the source text the document was parsed from.
// Two loads of identical source carry the same fingerprint.
func (d *Document) Fingerprint() uint64 { return d.fingerprint }
