package rotation

import (
	"fmt"
	"math"

	"github.com/akmonengine/spatial/matrix"
	"github.com/akmonengine/spatial/vector"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is the number a + b𝒊 + c𝒋 + d𝒌, stored as a gonum quat.Number
// (Real=a, Imag=b, Jmag=c, Kmag=d).
type Quaternion quat.Number

var (
	Zero = Quaternion{}
	// One is the real number 1, the identity rotation.
	One = Quaternion{Real: 1}
	I   = Quaternion{Imag: 1}
	J   = Quaternion{Jmag: 1}
	K   = Quaternion{Kmag: 1}
)

// Of returns a + b𝒊 + c𝒋 + d𝒌.
func Of(a, b, c, d float64) Quaternion {
	return Quaternion{Real: a, Imag: b, Jmag: c, Kmag: d}
}

// FromScalarVector returns the quaternion with real part r and vector part v.
func FromScalarVector(r float64, v vector.Vec3) Quaternion {
	return Of(r, v.X(), v.Y(), v.Z())
}

// FromVector returns the vector quaternion (real part 0) with vector part v.
func FromVector(v vector.Vec3) Quaternion {
	return FromScalarVector(0, v)
}

// FromAxisAngle returns the quaternion rotating by the full angle t (radians) about axis:
// cos(t/2) + sin(t/2)·axis. The axis is normalized first; a zero axis fails with
// vector.ErrZeroLength.
func FromAxisAngle(t float64, axis vector.Vec3) (Quaternion, error) {
	n, err := axis.Normalized()
	if err != nil {
		return Quaternion{}, fmt.Errorf("rotation axis: %w", err)
	}
	ht := t / 2
	return FromScalarVector(math.Cos(ht), n.Mul(math.Sin(ht))), nil
}

// MustFromAxisAngle is like FromAxisAngle but panics on a zero axis.
func MustFromAxisAngle(t float64, axis vector.Vec3) Quaternion {
	q, err := FromAxisAngle(t, axis)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quaternion) num() quat.Number {
	return quat.Number(q)
}

// A returns the real part.
func (q Quaternion) A() float64 { return q.Real }
func (q Quaternion) B() float64 { return q.Imag }
func (q Quaternion) C() float64 { return q.Jmag }
func (q Quaternion) D() float64 { return q.Kmag }

// Vector returns the vector part (b, c, d).
func (q Quaternion) Vector() vector.Vec3 {
	return vector.V3(q.Imag, q.Jmag, q.Kmag)
}

func (q Quaternion) Add(rhs Quaternion) Quaternion {
	return Quaternion(quat.Add(q.num(), rhs.num()))
}

// AddReal adds r to the real part only.
func (q Quaternion) AddReal(r float64) Quaternion {
	return Of(q.Real+r, q.Imag, q.Jmag, q.Kmag)
}

// Scale multiplies every component by r.
func (q Quaternion) Scale(r float64) Quaternion {
	return Quaternion(quat.Scale(r, q.num()))
}

// Div divides every component by r.
func (q Quaternion) Div(r float64) Quaternion {
	return Of(q.Real/r, q.Imag/r, q.Jmag/r, q.Kmag/r)
}

// Mul returns the Hamilton product q·rhs. It is not commutative.
func (q Quaternion) Mul(rhs Quaternion) Quaternion {
	return Quaternion(quat.Mul(q.num(), rhs.num()))
}

// Conj returns a - b𝒊 - c𝒋 - d𝒌.
func (q Quaternion) Conj() Quaternion {
	return Quaternion(quat.Conj(q.num()))
}

func (q Quaternion) NormSquared() float64 {
	return q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
}

func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.NormSquared())
}

// Unit returns q scaled to norm 1, or ErrZeroNorm.
func (q Quaternion) Unit() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, ErrZeroNorm
	}
	return q.Div(n), nil
}

// Inv returns the multiplicative inverse Conj(q)/|q|².
// q must not be zero: the zero quaternion yields non-finite components.
func (q Quaternion) Inv() Quaternion {
	return q.Conj().Div(q.NormSquared())
}

// Conjugate returns p·q·p⁻¹ where p is the receiver.
func (q Quaternion) Conjugate(p Quaternion) Quaternion {
	return q.Mul(p).Mul(q.Inv())
}

// Rotate conjugates v, lifted to a vector quaternion, by q and returns the vector part.
// For a unit quaternion this is v rotated by the rotation q encodes.
func (q Quaternion) Rotate(v vector.Vec3) vector.Vec3 {
	return q.Conjugate(FromVector(v)).Vector()
}

// Left returns the rotated X axis.
func (q Quaternion) Left() vector.Vec3 {
	return q.Rotate(vector.XAxis)
}

// Up returns the rotated Y axis.
func (q Quaternion) Up() vector.Vec3 {
	return q.Rotate(vector.YAxis)
}

// Forward returns the rotated Z axis.
func (q Quaternion) Forward() vector.Vec3 {
	return q.Rotate(vector.ZAxis)
}

// ToEulerAngles derives pitch and yaw from the forward direction alone.
// Roll is not recoverable this way and is always 0.
func (q Quaternion) ToEulerAngles() EulerAngles {
	return AzimuthElevation(q.Forward())
}

// ToRotationMatrix goes through ToEulerAngles, so it drops roll as well.
func (q Quaternion) ToRotationMatrix() matrix.Mat3 {
	return q.ToEulerAngles().ToRotationMatrix()
}

// Equal reports exact componentwise equality.
func (q Quaternion) Equal(rhs Quaternion) bool {
	return q == rhs
}

func (q Quaternion) ApproxEqual(rhs Quaternion, epsilon float64) bool {
	return math.Abs(q.Real-rhs.Real) <= epsilon &&
		math.Abs(q.Imag-rhs.Imag) <= epsilon &&
		math.Abs(q.Jmag-rhs.Jmag) <= epsilon &&
		math.Abs(q.Kmag-rhs.Kmag) <= epsilon
}

func (q Quaternion) String() string {
	return fmt.Sprintf("%v + %vi + %vj + %vk", q.Real, q.Imag, q.Jmag, q.Kmag)
}
