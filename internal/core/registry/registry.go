package registry

import (
	"sort"
	"sync"

	"github.com/prefabric/prefabric/internal/core/value"
	"github.com/prefabric/prefabric/pkg/sequence"
)

// TypeDescriptor is everything the core knows about one registered component
// type: its name in prefab source, the structural shape its literals are
// assembled with, and the host capability that moves values onto entities.
type TypeDescriptor struct {
	Name       string
	Shape      value.Shape
	Capability Capability
}

// Registry owns the type and command tables. Both are populated during a
// startup phase and read-mostly afterwards; registration during active
// assembly must be serialized by the embedding application.
//
// The registry is an explicitly constructed object threaded through load and
// assemble calls, never a process-wide singleton, so tests can each own an
// independent one.
type Registry struct {
	mu       sync.RWMutex
	types    map[string]TypeDescriptor
	commands map[string]BuildCommand
}

func New() *Registry {
	return &Registry{
		types:    make(map[string]TypeDescriptor),
		commands: make(map[string]BuildCommand),
	}
}

// RegisterType inserts or overwrites the descriptor for name. Registration
// is a hard prerequisite for parsing any document that references the type.
func (r *Registry) RegisterType(name string, shape value.Shape, cap Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = TypeDescriptor{Name: name, Shape: shape, Capability: cap}
}

// TypeInfo looks up the descriptor for name.
func (r *Registry) TypeInfo(name string) (TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	td, ok := r.types[name]
	return td, ok
}

// RegisterCommand inserts or overwrites the build command for name.
func (r *Registry) RegisterCommand(name string, cmd BuildCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[name] = cmd
}

// Command looks up the build command registered under name.
func (r *Registry) Command(name string) (BuildCommand, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := sequence.FromMapKeys(r.types).Collect()
	sort.Strings(names)
	return names
}

// Commands returns the registered command names, sorted.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := sequence.FromMapKeys(r.commands).Collect()
	sort.Strings(names)
	return names
}
