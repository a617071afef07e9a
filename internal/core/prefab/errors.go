package prefab

import "errors"

// Load and assembly errors. Parse-stage failures surface to the caller of
// Load; there is no partial document. Assembly-stage failures abort the
// remaining steps for that entity without rolling back the steps already
// applied.
var (
	// ErrFileRead wraps a failure to read prefab source from its storage.
	ErrFileRead = errors.New("prefab source unreadable")
	// ErrUnregisteredComponent marks a document referencing a type name
	// absent from the registry. A setup ordering bug, not recoverable by
	// retry.
	ErrUnregisteredComponent = errors.New("component type not registered")
	// ErrUnregisteredCommand marks a document referencing an unknown build
	// command.
	ErrUnregisteredCommand = errors.New("build command not registered")
	// ErrNoCapability marks a type registered without a usable capability.
	ErrNoCapability = errors.New("component type has no capability")
	// ErrCyclicReference marks a prefab that transitively includes itself.
	ErrCyclicReference = errors.New("cyclic prefab reference")
)
