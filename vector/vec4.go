package vector

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec4 is a 4-component vector.
type Vec4 mgl64.Vec4

var (
	Zero4  = Vec4{0, 0, 0, 0}
	XAxis4 = Vec4{1, 0, 0, 0}
	YAxis4 = Vec4{0, 1, 0, 0}
	ZAxis4 = Vec4{0, 0, 1, 0}
	WAxis4 = Vec4{0, 0, 0, 1}
)

func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec4FromN narrows a VecN, failing if it is not 4-dimensional.
func Vec4FromN(v VecN) (Vec4, error) {
	if v.Dim() != 4 {
		return Vec4{}, fmt.Errorf("%w: expected a 4-vector, got a %d-vector", ErrDimensionMismatch, v.Dim())
	}
	return Vec4{v.At(0), v.At(1), v.At(2), v.At(3)}, nil
}

func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

func (v Vec4) Vec() mgl64.Vec4 {
	return mgl64.Vec4(v)
}

func (v Vec4) Component(i int) float64 {
	return v[i]
}

func (v Vec4) Components() []float64 {
	return []float64{v[0], v[1], v[2], v[3]}
}

func (v Vec4) N() VecN {
	return NewVecN(v[:]...)
}

func (v Vec4) Add(rhs Vec4) Vec4 {
	return Vec4(v.Vec().Add(rhs.Vec()))
}

func (v Vec4) Sub(rhs Vec4) Vec4 {
	return Vec4(v.Vec().Sub(rhs.Vec()))
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4) Mul(n float64) Vec4 {
	return Vec4(v.Vec().Mul(n))
}

func (v Vec4) Dot(rhs Vec4) float64 {
	return v.Vec().Dot(rhs.Vec())
}

func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec4) Normalized() (Vec4, error) {
	l := v.Len()
	if l == 0 {
		return Vec4{}, ErrZeroLength
	}
	return v.Mul(1.0 / l), nil
}

func (v Vec4) Equal(rhs Vec4) bool {
	return v == rhs
}

func (v Vec4) ApproxEqual(rhs Vec4, epsilon float64) bool {
	return approxEqual(v[:], rhs[:], epsilon)
}

func (v Vec4) String() string {
	return format(v[:])
}
