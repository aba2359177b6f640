package matrix

import (
	"fmt"
	"math"

	"github.com/akmonengine/spatial/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Mat2 is a 2×2 matrix.
type Mat2 mgl64.Mat2

func Identity2() Mat2 {
	return Mat2(mgl64.Ident2())
}

// Mat2Of builds a matrix from its components in row-major order.
func Mat2Of(m11, m12, m21, m22 float64) Mat2 {
	return Mat2(mgl64.Mat2FromRows(
		mgl64.Vec2{m11, m12},
		mgl64.Vec2{m21, m22},
	))
}

// Rotation2 returns the counter-clockwise rotation by t radians.
func Rotation2(t float64) Mat2 {
	return Mat2(mgl64.Rotate2D(t))
}

func Mat2FromDense(d *Dense) (Mat2, error) {
	if r, c := d.Dims(); r != 2 || c != 2 {
		return Mat2{}, fmt.Errorf("%w: expected 2x2, got %dx%d", ErrDimensionMismatch, r, c)
	}
	return Mat2Of(d.At(0, 0), d.At(0, 1), d.At(1, 0), d.At(1, 1)), nil
}

func (m Mat2) mgl() mgl64.Mat2 {
	return mgl64.Mat2(m)
}

func (m Mat2) At(row, col int) float64 {
	return m.mgl().At(row, col)
}

func (m Mat2) Row(i int) vector.Vec2 {
	return vector.Vec2(m.mgl().Row(i))
}

func (m Mat2) Col(j int) vector.Vec2 {
	return vector.Vec2(m.mgl().Col(j))
}

func (m Mat2) Mul(rhs Mat2) Mat2 {
	return Mat2(m.mgl().Mul2(rhs.mgl()))
}

func (m Mat2) MulVec(v vector.Vec2) vector.Vec2 {
	return vector.Vec2(m.mgl().Mul2x1(v.Vec()))
}

func (m Mat2) Scale(n float64) Mat2 {
	return Mat2(m.mgl().Mul(n))
}

func (m Mat2) Add(rhs Mat2) Mat2 {
	return Mat2(m.mgl().Add(rhs.mgl()))
}

func (m Mat2) Transpose() Mat2 {
	return Mat2(m.mgl().Transpose())
}

func (m Mat2) Equal(rhs Mat2) bool {
	return m == rhs
}

func (m Mat2) ApproxEqual(rhs Mat2, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-rhs[i]) > epsilon {
			return false
		}
	}
	return true
}

func (m Mat2) Dense() *Dense {
	return denseOf(2, 2, m.At)
}

func (m Mat2) String() string {
	return format(2, 2, m.At)
}
