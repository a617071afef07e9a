package prefab

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/prefabric/prefabric/internal/core/observability/log"
	"github.com/prefabric/prefabric/internal/core/registry"
)

// Loader reads, parses and caches prefab documents. A path is read from its
// source and parsed at most once until it is explicitly unloaded; concurrent
// first loads of the same path are collapsed into a single parse. Cached
// documents are shared by pointer, so many in-flight spawns referencing one
// path cost one parsed copy.
type Loader struct {
	reg *registry.Registry
	src Source
	log log.Log

	mu    sync.RWMutex
	docs  map[string]*Document
	group singleflight.Group
}

func NewLoader(reg *registry.Registry, src Source, logger log.Log) *Loader {
	if logger == nil {
		logger = log.Nop()
	}
	return &Loader{
		reg:  reg,
		src:  src,
		log:  logger,
		docs: make(map[string]*Document),
	}
}

// Load returns the document cached under path, reading and parsing it on
// first reference. Read failures surface wrapped in ErrFileRead; parse and
// resolution failures surface as-is and nothing is cached.
func (l *Loader) Load(path string) (*Document, error) {
	l.mu.RLock()
	doc, ok := l.docs[path]
	l.mu.RUnlock()
	if ok {
		return doc, nil
	}

	v, err, _ := l.group.Do(path, func() (any, error) {
		// a concurrent loader may have won the race before this call joined
		l.mu.RLock()
		cached, ok := l.docs[path]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}

		text, err := l.src.ReadText(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
		}
		parsed, err := Build(text, l.reg)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		parsed.path = path

		l.mu.Lock()
		l.docs[path] = parsed
		l.mu.Unlock()

		l.log.Debug("prefab parsed",
			log.String("path", path),
			log.Int("steps", len(parsed.steps)),
			log.Uint64("fingerprint", parsed.fingerprint),
		)
		return parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Document), nil
}

// Unload evicts the cache entry for path. The next Load re-reads the source.
func (l *Loader) Unload(path string) {
	l.mu.Lock()
	delete(l.docs, path)
	l.mu.Unlock()
}

// Spawn loads the document at path and assembles it onto the entity.
func (l *Loader) Spawn(path string, e registry.Entity) error {
	doc, err := l.Load(path)
	if err != nil {
		return err
	}
	return l.Assemble(doc, e)
}
