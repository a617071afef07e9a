// Package world is an in-memory entity-component store: the reference host
// runtime the prefab core is exercised against in tests and the CLI. Real
// embeddings supply their own runtime behind the registry's Capability seam.
package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/prefabric/prefabric/internal/core/registry"
)

// World stores entities and their components keyed by type name.
type World struct {
	mu       sync.RWMutex
	entities map[uuid.UUID]map[string]any
}

func New() *World {
	return &World{entities: make(map[uuid.UUID]map[string]any)}
}

// Spawn creates an empty entity.
func (w *World) Spawn() *Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := uuid.New()
	w.entities[id] = make(map[string]any)
	return &Entity{id: id, world: w}
}

// Despawn removes the entity and all its components.
func (w *World) Despawn(e *Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entities, e.id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

// Entity is one addressable component container. Components are stored as
// pointers so an apply can mutate them in place.
type Entity struct {
	id    uuid.UUID
	world *World
}

func (e *Entity) ID() uuid.UUID { return e.id }

// Insert attaches (or replaces) the component stored under typeName.
func (e *Entity) Insert(typeName string, comp any) {
	e.world.mu.Lock()
	defer e.world.mu.Unlock()
	if comps, ok := e.world.entities[e.id]; ok {
		comps[typeName] = comp
	}
}

// Get returns the component stored under typeName.
func (e *Entity) Get(typeName string) (any, bool) {
	e.world.mu.RLock()
	defer e.world.mu.RUnlock()
	comps, ok := e.world.entities[e.id]
	if !ok {
		return nil, false
	}
	comp, ok := comps[typeName]
	return comp, ok
}

// Has reports whether the entity carries a component of typeName.
func (e *Entity) Has(typeName string) bool {
	_, ok := e.Get(typeName)
	return ok
}

// TypeNames returns the entity's component type names, sorted.
func (e *Entity) TypeNames() []string {
	e.world.mu.RLock()
	defer e.world.mu.RUnlock()
	comps := e.world.entities[e.id]
	names := make([]string, 0, len(comps))
	for name := range comps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cast resolves a registry entity handle back to a world entity. Build
// commands and capabilities targeting this runtime use it to downcast the
// opaque handle.
func Cast(e registry.Entity) (*Entity, error) {
	ent, ok := e.(*Entity)
	if !ok {
		return nil, fmt.Errorf("entity %T does not belong to this world", e)
	}
	return ent, nil
}

// Component fetches the entity's component of type T stored under typeName.
func Component[T any](e *Entity, typeName string) (*T, bool) {
	comp, ok := e.Get(typeName)
	if !ok {
		return nil, false
	}
	typed, ok := comp.(*T)
	return typed, ok
}
