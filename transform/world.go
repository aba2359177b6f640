package transform

import (
	"github.com/akmonengine/spatial/rotation"
	"github.com/akmonengine/spatial/vector"
)

// World is a root transform holding an absolute rotation and position.
// The zero value is not usable; start from Identity or NewWorld.
type World struct {
	rotation        rotation.Quaternion
	inverseRotation rotation.Quaternion
	position        vector.Vec3
}

// NewWorld creates a world transform. rotation is expected to be non-zero.
func NewWorld(rot rotation.Quaternion, position vector.Vec3) *World {
	w := &World{position: position}
	w.SetRotation(rot)
	return w
}

// Identity returns a fresh transform whose local space coincides with world space.
func Identity() *World {
	return NewWorld(rotation.One, vector.Zero3)
}

func WorldFromRotation(rot rotation.Quaternion) *World {
	return NewWorld(rot, vector.Zero3)
}

func WorldFromPosition(position vector.Vec3) *World {
	return NewWorld(rotation.One, position)
}

// WorldFromEuler rotates by pitch, then yaw, then roll.
func WorldFromEuler(angles rotation.EulerAngles, position vector.Vec3) *World {
	return NewWorld(eulerRotation(angles), position)
}

func (w *World) Rotation() rotation.Quaternion {
	return w.rotation
}

func (w *World) SetRotation(rot rotation.Quaternion) {
	w.rotation = rot
	w.inverseRotation = rot.Inv()
}

func (w *World) Position() vector.Vec3 {
	return w.position
}

func (w *World) SetPosition(position vector.Vec3) {
	w.position = position
}

// ToWorld returns position + rotation·p.
func (w *World) ToWorld(localPosition vector.Vec3) vector.Vec3 {
	return toWorld(w.rotation, w.position, localPosition)
}

// ToLocal returns rotation⁻¹·(p - position).
func (w *World) ToLocal(worldPosition vector.Vec3) vector.Vec3 {
	return toLocal(w.inverseRotation, w.position, worldPosition)
}
