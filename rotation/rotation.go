// Package rotation implements quaternion algebra and pitch/yaw/roll Euler angles, and the
// conversions between them, rotation matrices and direction vectors.
//
// Conventions:
//   - Right-handed axes; positive angles turn counter-clockwise looking down the
//     positive axis toward the origin.
//   - Pitch is about X, yaw about Y, roll about Z. All angles are raw radians and are
//     never wrapped.
//   - For unit rotation quaternions p and q, p.Mul(q) applies q first, then p.
//
// Quaternions and Euler angles are immutable values; every operation returns a new value.
package rotation

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrZeroNorm is returned when normalizing a quaternion whose norm is exactly zero.
var ErrZeroNorm = errors.New("rotation: quaternion has zero norm")

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return mgl64.DegToRad(deg)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return mgl64.RadToDeg(rad)
}
