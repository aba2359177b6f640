package transform

import (
	"github.com/akmonengine/spatial/rotation"
	"github.com/akmonengine/spatial/vector"
)

// Local is a transform whose rotation and position are expressed in its parent's space.
// The zero value has no parent and is not usable; start from NewLocal or LocalIdentity.
type Local struct {
	World
	parent Transform
}

func NewLocal(parent Transform, rot rotation.Quaternion, position vector.Vec3) (*Local, error) {
	if isNil(parent) {
		return nil, ErrNilParent
	}
	l := &Local{parent: parent}
	l.position = position
	l.SetRotation(rot)
	return l, nil
}

// LocalIdentity attaches a transform that coincides with its parent.
func LocalIdentity(parent Transform) (*Local, error) {
	return NewLocal(parent, rotation.One, vector.Zero3)
}

func LocalFromRotation(parent Transform, rot rotation.Quaternion) (*Local, error) {
	return NewLocal(parent, rot, vector.Zero3)
}

func LocalFromPosition(parent Transform, position vector.Vec3) (*Local, error) {
	return NewLocal(parent, rotation.One, position)
}

// LocalFromEuler rotates by pitch, then yaw, then roll relative to the parent.
func LocalFromEuler(parent Transform, angles rotation.EulerAngles, position vector.Vec3) (*Local, error) {
	return NewLocal(parent, eulerRotation(angles), position)
}

func (l *Local) Parent() Transform {
	return l.parent
}

// SetParent re-attaches l. It fails with ErrNilParent for a nil parent and with
// ErrCycle when parent is l itself or one of its descendants.
func (l *Local) SetParent(parent Transform) error {
	if isNil(parent) {
		return ErrNilParent
	}
	for cur := parent; ; {
		p, ok := cur.(*Local)
		if !ok {
			break
		}
		if p == l {
			return ErrCycle
		}
		cur = p.parent
	}
	l.parent = parent
	return nil
}

// Depth returns the number of Local links between l and the first non-Local ancestor.
func (l *Local) Depth() int {
	depth := 1
	for cur := l.parent; ; depth++ {
		p, ok := cur.(*Local)
		if !ok {
			return depth
		}
		cur = p.parent
	}
}

func (l *Local) ToWorld(localPosition vector.Vec3) vector.Vec3 {
	return l.parent.ToWorld(l.World.ToWorld(localPosition))
}

func (l *Local) ToLocal(worldPosition vector.Vec3) vector.Vec3 {
	return l.World.ToLocal(l.parent.ToLocal(worldPosition))
}
