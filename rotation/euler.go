package rotation

import (
	"fmt"
	"math"

	"github.com/akmonengine/spatial/matrix"
	"github.com/akmonengine/spatial/vector"
)

// EulerAngles is a pitch (X), yaw (Y), roll (Z) triple in radians.
type EulerAngles struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

var ZeroAngles = EulerAngles{}

func Euler(pitch, yaw, roll float64) EulerAngles {
	return EulerAngles{Pitch: pitch, Yaw: yaw, Roll: roll}
}

// EulerDeg builds angles from degrees.
func EulerDeg(pitch, yaw, roll float64) EulerAngles {
	return Euler(DegToRad(pitch), DegToRad(yaw), DegToRad(roll))
}

// Degrees returns pitch, yaw and roll in degrees.
func (e EulerAngles) Degrees() (pitch, yaw, roll float64) {
	return RadToDeg(e.Pitch), RadToDeg(e.Yaw), RadToDeg(e.Roll)
}

// Transform returns RotateX(pitch)·RotateY(yaw)·RotateZ(roll).
//
// This is the reverse order of ToRotationMatrix; the two agree only for special
// angle combinations.
func (e EulerAngles) Transform() matrix.Mat3 {
	return matrix.RotateX(e.Pitch).Mul(matrix.RotateY(e.Yaw)).Mul(matrix.RotateZ(e.Roll))
}

// ToRotationQuaternion composes the three axis rotations as roll·yaw·pitch:
// pitch is applied first, then yaw, then roll.
func (e EulerAngles) ToRotationQuaternion() Quaternion {
	pitch := MustFromAxisAngle(e.Pitch, vector.XAxis)
	yaw := MustFromAxisAngle(e.Yaw, vector.YAxis)
	roll := MustFromAxisAngle(e.Roll, vector.ZAxis)
	return roll.Mul(yaw).Mul(pitch)
}

// ToDirectionVector returns the forward (Z) axis rotated by these angles.
func (e EulerAngles) ToDirectionVector() vector.Vec3 {
	return e.ToRotationQuaternion().Rotate(vector.ZAxis)
}

// ToRotationMatrix returns RotateZ(roll)·RotateY(yaw)·RotateX(pitch), the matrix form of
// ToRotationQuaternion.
func (e EulerAngles) ToRotationMatrix() matrix.Mat3 {
	return matrix.RotateZ(e.Roll).Mul(matrix.RotateY(e.Yaw)).Mul(matrix.RotateX(e.Pitch))
}

// Equal reports exact componentwise equality.
func (e EulerAngles) Equal(rhs EulerAngles) bool {
	return e == rhs
}

func (e EulerAngles) ApproxEqual(rhs EulerAngles, epsilon float64) bool {
	return math.Abs(e.Pitch-rhs.Pitch) <= epsilon &&
		math.Abs(e.Yaw-rhs.Yaw) <= epsilon &&
		math.Abs(e.Roll-rhs.Roll) <= epsilon
}

func (e EulerAngles) String() string {
	return fmt.Sprintf("(%v, %v, %v)", e.Pitch, e.Yaw, e.Roll)
}

// AzimuthElevation recovers pitch and yaw from a direction vector:
//
//	pitch = atan2(y, -z)
//	yaw   = atan2(z, x)
//	pitch -= π when yaw >= 0
//
// The >= tie-break decides the discontinuity at yaw = 0. Roll is always 0.
func AzimuthElevation(dir vector.Vec3) EulerAngles {
	pitch := math.Atan2(dir.Y(), -dir.Z())
	yaw := math.Atan2(dir.Z(), dir.X())
	if yaw >= 0 {
		pitch -= math.Pi
	}
	return Euler(pitch, yaw, 0)
}
