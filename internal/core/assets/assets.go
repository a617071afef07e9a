// Package assets is the narrow seam between build commands and the host's
// resource loading subsystem. The core never interprets handles; it only
// moves them from a resolver into components.
package assets

import (
	"sync"

	"github.com/google/uuid"
)

// Handle is an opaque reference to a loaded (or loading) external resource.
type Handle any

// Resolver begins or completes loading of an external resource by path.
// Implemented by the host runtime; consumed by build commands.
type Resolver interface {
	Resolve(path string) (Handle, error)
}

// MemHandle is the handle type fabricated by MemResolver.
type MemHandle struct {
	ID   uuid.UUID
	Path string
}

// MemResolver is an in-memory Resolver for tests and the CLI. It fabricates
// one stable handle per path and records every requested path.
type MemResolver struct {
	mu       sync.Mutex
	handles  map[string]MemHandle
	requests []string
}

func NewMemResolver() *MemResolver {
	return &MemResolver{handles: make(map[string]MemHandle)}
}

func (r *MemResolver) Resolve(path string) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, path)
	if h, ok := r.handles[path]; ok {
		return h, nil
	}
	h := MemHandle{ID: uuid.New(), Path: path}
	r.handles[path] = h
	return h, nil
}

// Requests returns every path resolved so far, in order.
func (r *MemResolver) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.requests))
	copy(out, r.requests)
	return out
}
