// Package commands ships the build commands this repo's reference runtime
// registers by default: bundle insertion and material initialization that
// need resolved assets, which plain field literals cannot express. The
// prefab core itself ships no commands, only the dispatch seam.
package commands

import (
	"errors"
	"fmt"

	"github.com/prefabric/prefabric/internal/core/assets"
	"github.com/prefabric/prefabric/internal/core/registry"
	"github.com/prefabric/prefabric/internal/core/value"
	"github.com/prefabric/prefabric/internal/core/world"
)

// RegisterBuiltins registers every built-in command against the given
// resolver. Call during setup, before documents referencing the commands are
// parsed.
func RegisterBuiltins(reg *registry.Registry, res assets.Resolver) {
	reg.RegisterCommand("SetColorMaterial", SetColorMaterial(res))
	reg.RegisterCommand("InsertSpriteBundle", InsertSpriteBundle(res))
	reg.RegisterCommand("InsertMeshBundle", InsertMeshBundle(res))
	reg.RegisterCommand("InsertCameraBundle", InsertCameraBundle())
}

// SetColorMaterial overwrites values on the entity's existing Material.
//
// Optional properties: `color`, `texture_path`.
func SetColorMaterial(res assets.Resolver) registry.CommandFunc {
	return func(props *value.Composite, e registry.Entity) error {
		ent, err := world.Cast(e)
		if err != nil {
			return err
		}
		mat, ok := world.Component[world.Material](ent, "Material")
		if !ok {
			return errors.New("entity has no Material to modify")
		}
		return applyMaterialProps(mat, props, res)
	}
}

// InsertSpriteBundle attaches Sprite, Material and Visible in one step.
//
// Optional properties: `color`, `texture_path`.
func InsertSpriteBundle(res assets.Resolver) registry.CommandFunc {
	return func(props *value.Composite, e registry.Entity) error {
		ent, err := world.Cast(e)
		if err != nil {
			return err
		}
		mat := &world.Material{Color: value.ColorWhite}
		if err := applyMaterialProps(mat, props, res); err != nil {
			return err
		}
		sprite := &world.Sprite{Color: mat.Color}
		if props != nil {
			if path, perr := props.GetString("texture_path"); perr == nil {
				sprite.TexturePath = path
			}
		}
		ent.Insert("Sprite", sprite)
		ent.Insert("Material", mat)
		ent.Insert("Visible", &world.Visible{})
		return nil
	}
}

// InsertMeshBundle attaches a MeshRenderer for a generated primitive plus a
// Material.
//
// Properties: `shape` (required, a `shape::Name` literal), `size` (default
// 1.0), `color`.
func InsertMeshBundle(res assets.Resolver) registry.CommandFunc {
	return func(props *value.Composite, e registry.Entity) error {
		ent, err := world.Cast(e)
		if err != nil {
			return err
		}
		if props == nil {
			return errors.New("InsertMeshBundle requires a shape property")
		}
		shape, err := props.GetShapeName("shape")
		if err != nil {
			return fmt.Errorf("InsertMeshBundle: %w", err)
		}
		mesh := &world.MeshRenderer{Shape: shape, Size: 1.0}
		if size, serr := props.GetFloat("size"); serr == nil {
			mesh.Size = size
		}
		mat := &world.Material{Color: value.ColorWhite}
		if err := applyMaterialProps(mat, props, res); err != nil {
			return err
		}
		ent.Insert("MeshRenderer", mesh)
		ent.Insert("Material", mat)
		return nil
	}
}

// InsertCameraBundle attaches a Camera.
//
// Optional property: `scale` (default 1.0).
func InsertCameraBundle() registry.CommandFunc {
	return func(props *value.Composite, e registry.Entity) error {
		ent, err := world.Cast(e)
		if err != nil {
			return err
		}
		cam := &world.Camera{Scale: 1.0}
		if props != nil {
			if scale, serr := props.GetFloat("scale"); serr == nil {
				cam.Scale = scale
			}
		}
		ent.Insert("Camera", cam)
		return nil
	}
}

// applyMaterialProps overlays the shared material properties onto mat,
// resolving `texture_path` through the asset resolver. Absent properties
// leave mat untouched; a property of the wrong kind is an error.
func applyMaterialProps(mat *world.Material, props *value.Composite, res assets.Resolver) error {
	if props == nil {
		return nil
	}
	if col, err := props.GetColor("color"); err == nil {
		mat.Color = col
	} else if !errors.Is(err, value.ErrFieldMissing) {
		return err
	}
	if path, err := props.GetString("texture_path"); err == nil {
		handle, rerr := res.Resolve(path)
		if rerr != nil {
			return fmt.Errorf("resolve %s: %w", path, rerr)
		}
		mat.Texture = handle
	} else if !errors.Is(err, value.ErrFieldMissing) {
		return err
	}
	return nil
}
