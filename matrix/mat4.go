package matrix

import (
	"fmt"
	"math"

	"github.com/akmonengine/spatial/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4×4 matrix.
type Mat4 mgl64.Mat4

func Identity4() Mat4 {
	return Mat4(mgl64.Ident4())
}

// Mat4Of builds a matrix from its components in row-major order.
func Mat4Of(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float64,
) Mat4 {
	return Mat4(mgl64.Mat4FromRows(
		mgl64.Vec4{m11, m12, m13, m14},
		mgl64.Vec4{m21, m22, m23, m24},
		mgl64.Vec4{m31, m32, m33, m34},
		mgl64.Vec4{m41, m42, m43, m44},
	))
}

func Mat4FromDense(d *Dense) (Mat4, error) {
	if r, c := d.Dims(); r != 4 || c != 4 {
		return Mat4{}, fmt.Errorf("%w: expected 4x4, got %dx%d", ErrDimensionMismatch, r, c)
	}
	var m mgl64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, d.At(i, j))
		}
	}
	return Mat4(m), nil
}

func (m Mat4) mgl() mgl64.Mat4 {
	return mgl64.Mat4(m)
}

func (m Mat4) At(row, col int) float64 {
	return m.mgl().At(row, col)
}

func (m Mat4) Row(i int) vector.Vec4 {
	return vector.Vec4(m.mgl().Row(i))
}

func (m Mat4) Col(j int) vector.Vec4 {
	return vector.Vec4(m.mgl().Col(j))
}

func (m Mat4) Mul(rhs Mat4) Mat4 {
	return Mat4(m.mgl().Mul4(rhs.mgl()))
}

func (m Mat4) MulVec(v vector.Vec4) vector.Vec4 {
	return vector.Vec4(m.mgl().Mul4x1(v.Vec()))
}

func (m Mat4) Scale(n float64) Mat4 {
	return Mat4(m.mgl().Mul(n))
}

func (m Mat4) Add(rhs Mat4) Mat4 {
	return Mat4(m.mgl().Add(rhs.mgl()))
}

func (m Mat4) Transpose() Mat4 {
	return Mat4(m.mgl().Transpose())
}

func (m Mat4) Equal(rhs Mat4) bool {
	return m == rhs
}

func (m Mat4) ApproxEqual(rhs Mat4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-rhs[i]) > epsilon {
			return false
		}
	}
	return true
}

func (m Mat4) Dense() *Dense {
	return denseOf(4, 4, m.At)
}

func (m Mat4) String() string {
	return format(4, 4, m.At)
}
