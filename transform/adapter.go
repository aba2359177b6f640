package transform

import (
	"github.com/akmonengine/spatial/rotation"
	"github.com/akmonengine/spatial/vector"
)

// Pose is anything carrying a rotation and a position in world space.
type Pose interface {
	Position() vector.Vec3
	Rotation() rotation.Quaternion
}

// Adapter turns a Pose into a Transform, reading the pose on every call.
type Adapter struct {
	Pose Pose
}

func Adapt(pose Pose) Adapter {
	return Adapter{Pose: pose}
}

func (a Adapter) ToWorld(localPosition vector.Vec3) vector.Vec3 {
	return toWorld(a.Pose.Rotation(), a.Pose.Position(), localPosition)
}

func (a Adapter) ToLocal(worldPosition vector.Vec3) vector.Vec3 {
	return toLocal(a.Pose.Rotation().Inv(), a.Pose.Position(), worldPosition)
}
