package vector

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3-component vector.
type Vec3 mgl64.Vec3

var (
	Zero3 = Vec3{0, 0, 0}
	XAxis = Vec3{1, 0, 0}
	YAxis = Vec3{0, 1, 0}
	ZAxis = Vec3{0, 0, 1}
)

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromN narrows a VecN, failing if it is not 3-dimensional.
func Vec3FromN(v VecN) (Vec3, error) {
	if v.Dim() != 3 {
		return Vec3{}, fmt.Errorf("%w: expected a 3-vector, got a %d-vector", ErrDimensionMismatch, v.Dim())
	}
	return Vec3{v.At(0), v.At(1), v.At(2)}, nil
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Vec returns v as an mgl64 vector.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

func (v Vec3) Component(i int) float64 {
	return v[i]
}

func (v Vec3) Components() []float64 {
	return []float64{v[0], v[1], v[2]}
}

func (v Vec3) N() VecN {
	return NewVecN(v[:]...)
}

func (v Vec3) Add(rhs Vec3) Vec3 {
	return Vec3(v.Vec().Add(rhs.Vec()))
}

func (v Vec3) Sub(rhs Vec3) Vec3 {
	return Vec3(v.Vec().Sub(rhs.Vec()))
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Mul(n float64) Vec3 {
	return Vec3(v.Vec().Mul(n))
}

func (v Vec3) Dot(rhs Vec3) float64 {
	return v.Vec().Dot(rhs.Vec())
}

func (v Vec3) Cross(rhs Vec3) Vec3 {
	return Vec3(v.Vec().Cross(rhs.Vec()))
}

func (v Vec3) LenSqr() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSqr())
}

// Normalized returns the unit vector pointing along v.
// It fails with ErrZeroLength when v has length exactly zero.
func (v Vec3) Normalized() (Vec3, error) {
	l := v.Len()
	if l == 0 {
		return Vec3{}, ErrZeroLength
	}
	return v.Mul(1.0 / l), nil
}

// Equal reports exact componentwise equality.
func (v Vec3) Equal(rhs Vec3) bool {
	return v == rhs
}

// ApproxEqual reports whether every component differs by at most epsilon.
func (v Vec3) ApproxEqual(rhs Vec3, epsilon float64) bool {
	return approxEqual(v[:], rhs[:], epsilon)
}

func (v Vec3) String() string {
	return format(v[:])
}
