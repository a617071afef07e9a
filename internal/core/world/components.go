package world

import (
	"github.com/prefabric/prefabric/internal/core/assets"
	"github.com/prefabric/prefabric/internal/core/registry"
	"github.com/prefabric/prefabric/internal/core/value"
)

// The standard component set this runtime ships. Deliberately small: enough
// for the built-in bundle commands and for authoring useful prefabs against
// the reference world.

// Transform places an entity in space.
type Transform struct {
	Translation value.Vector3
	Rotation    value.Vector3
	Scale       value.Vector3
}

// Position is an integer grid position.
type Position struct {
	X int32
	Y int32
}

// Visible marks an entity as rendered. A marker: no fields.
type Visible struct{}

// Sprite is a 2D textured quad.
type Sprite struct {
	TexturePath string
	Color       value.Color
}

// Material carries a resolved texture handle and a tint.
type Material struct {
	Color   value.Color
	Texture assets.Handle
}

// MeshRenderer renders a generated primitive mesh.
type MeshRenderer struct {
	Shape string
	Size  float32
}

// Camera projects the scene.
type Camera struct {
	Scale float32
}

// RegisterStandard registers the standard component set with reflected
// capabilities. Call once during setup, before any document is loaded.
func RegisterStandard(reg *registry.Registry) {
	reg.RegisterType("Transform", value.ShapeStruct, Reflected[Transform]("Transform"))
	reg.RegisterType("Position", value.ShapeStruct, Reflected[Position]("Position"))
	reg.RegisterType("Visible", value.ShapeStruct, Reflected[Visible]("Visible"))
	reg.RegisterType("Sprite", value.ShapeStruct, Reflected[Sprite]("Sprite"))
	reg.RegisterType("Material", value.ShapeStruct, Reflected[Material]("Material"))
	reg.RegisterType("MeshRenderer", value.ShapeStruct, Reflected[MeshRenderer]("MeshRenderer"))
	reg.RegisterType("Camera", value.ShapeStruct, Reflected[Camera]("Camera"))
}
