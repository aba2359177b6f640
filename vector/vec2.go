package vector

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2-component vector.
type Vec2 mgl64.Vec2

var (
	Zero2  = Vec2{0, 0}
	XAxis2 = Vec2{1, 0}
	YAxis2 = Vec2{0, 1}
)

func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Vec2FromN narrows a VecN, failing if it is not 2-dimensional.
func Vec2FromN(v VecN) (Vec2, error) {
	if v.Dim() != 2 {
		return Vec2{}, fmt.Errorf("%w: expected a 2-vector, got a %d-vector", ErrDimensionMismatch, v.Dim())
	}
	return Vec2{v.At(0), v.At(1)}, nil
}

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

func (v Vec2) Vec() mgl64.Vec2 {
	return mgl64.Vec2(v)
}

func (v Vec2) Component(i int) float64 {
	return v[i]
}

func (v Vec2) Components() []float64 {
	return []float64{v[0], v[1]}
}

func (v Vec2) N() VecN {
	return NewVecN(v[:]...)
}

func (v Vec2) Add(rhs Vec2) Vec2 {
	return Vec2(v.Vec().Add(rhs.Vec()))
}

func (v Vec2) Sub(rhs Vec2) Vec2 {
	return Vec2(v.Vec().Sub(rhs.Vec()))
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

func (v Vec2) Mul(n float64) Vec2 {
	return Vec2(v.Vec().Mul(n))
}

func (v Vec2) Dot(rhs Vec2) float64 {
	return v.Vec().Dot(rhs.Vec())
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec2) Normalized() (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, ErrZeroLength
	}
	return v.Mul(1.0 / l), nil
}

func (v Vec2) Equal(rhs Vec2) bool {
	return v == rhs
}

func (v Vec2) ApproxEqual(rhs Vec2, epsilon float64) bool {
	return approxEqual(v[:], rhs[:], epsilon)
}

func (v Vec2) String() string {
	return format(v[:])
}
