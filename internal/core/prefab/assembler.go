package prefab

import (
	"fmt"
	"slices"

	"github.com/prefabric/prefabric/internal/core/observability/log"
	"github.com/prefabric/prefabric/internal/core/registry"
)

// Assemble executes the document's steps against one entity, in source
// order. Components are added when the entity lacks the type and applied
// (field overlay) when it already has it, which is how a later step can
// override part of an earlier one without clobbering the rest. Nested
// prefabs are resolved through the loader when their step is reached and
// spliced in place.
//
// A failing step aborts the remainder; steps already executed are not rolled
// back, so the entity may be left partially assembled.
func (l *Loader) Assemble(doc *Document, e registry.Entity) error {
	var active []string
	if doc.path != "" {
		active = append(active, doc.path)
	}
	return l.assemble(doc, e, active)
}

func (l *Loader) assemble(doc *Document, e registry.Entity, active []string) error {
	for i, step := range doc.steps {
		if err := l.runStep(step, e, active); err != nil {
			l.log.Debug("assembly aborted",
				log.String("prefab", doc.path),
				log.Int("step", i),
				log.Err(err),
			)
			return err
		}
	}
	return nil
}

func (l *Loader) runStep(step Step, e registry.Entity, active []string) error {
	switch s := step.(type) {
	case AddComponent:
		td, ok := l.reg.TypeInfo(s.TypeName)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnregisteredComponent, s.TypeName)
		}
		if td.Capability == nil {
			return fmt.Errorf("%w: %s", ErrNoCapability, s.TypeName)
		}
		if td.Capability.Has(e) {
			if err := td.Capability.Apply(e, s.Value); err != nil {
				return fmt.Errorf("apply %s: %w", s.TypeName, err)
			}
			return nil
		}
		if err := td.Capability.Add(e, s.Value); err != nil {
			return fmt.Errorf("add %s: %w", s.TypeName, err)
		}
		return nil

	case RunCommand:
		cmd, ok := l.reg.Command(s.CommandName)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnregisteredCommand, s.CommandName)
		}
		if err := cmd.Run(s.Properties, e); err != nil {
			return fmt.Errorf("command %s: %w", s.CommandName, err)
		}
		return nil

	case LoadNested:
		if slices.Contains(active, s.Path) {
			return fmt.Errorf("%w: %s", ErrCyclicReference, s.Path)
		}
		nested, err := l.Load(s.Path)
		if err != nil {
			return err
		}
		return l.assemble(nested, e, append(active, s.Path))
	}
	return fmt.Errorf("unhandled build step %T", step)
}
