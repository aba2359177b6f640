// Package transform maps positions between a local coordinate space and world space.
//
// A World transform is anchored directly in world space. A Local transform is placed
// relative to a parent Transform and reaches world space by delegating to it, so
// chains of any depth can be built. Parents are referenced, never owned or copied.
//
// Transforms hold mutable rotation and position state without any locking. Callers
// sharing a transform between goroutines must serialize writes themselves; a reader
// racing SetRotation/SetPosition can observe a new rotation with an old position.
package transform

import (
	"errors"

	"github.com/akmonengine/spatial/rotation"
	"github.com/akmonengine/spatial/vector"
)

var (
	ErrNilParent = errors.New("transform: parent is nil")
	ErrCycle     = errors.New("transform: parent chain leads back to the transform")
)

// Transform converts positions between its local space and world space.
// ToWorld and ToLocal are inverses of each other for unchanged transform state.
type Transform interface {
	ToWorld(localPosition vector.Vec3) vector.Vec3
	ToLocal(worldPosition vector.Vec3) vector.Vec3
}

// eulerRotation composes pitch, then yaw, then roll.
func eulerRotation(angles rotation.EulerAngles) rotation.Quaternion {
	q := rotation.MustFromAxisAngle(angles.Pitch, vector.XAxis)
	q = rotation.MustFromAxisAngle(angles.Yaw, vector.YAxis).Mul(q)
	q = rotation.MustFromAxisAngle(angles.Roll, vector.ZAxis).Mul(q)
	return q
}

func toWorld(rot rotation.Quaternion, pos, local vector.Vec3) vector.Vec3 {
	return pos.Add(rot.Rotate(local))
}

func toLocal(inv rotation.Quaternion, pos, world vector.Vec3) vector.Vec3 {
	return inv.Rotate(pos.Neg().Add(world))
}

func isNil(t Transform) bool {
	switch p := t.(type) {
	case nil:
		return true
	case *World:
		return p == nil
	case *Local:
		return p == nil
	case Adapter:
		switch pose := p.Pose.(type) {
		case nil:
			return true
		case *World:
			return pose == nil
		case *Local:
			return pose == nil
		}
	}
	return false
}
