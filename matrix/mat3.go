package matrix

import (
	"fmt"
	"math"

	"github.com/akmonengine/spatial/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 is a 3×3 matrix.
type Mat3 mgl64.Mat3

func Identity3() Mat3 {
	return Mat3(mgl64.Ident3())
}

// Mat3Of builds a matrix from its components in row-major order.
func Mat3Of(
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 float64,
) Mat3 {
	return Mat3(mgl64.Mat3FromRows(
		mgl64.Vec3{m11, m12, m13},
		mgl64.Vec3{m21, m22, m23},
		mgl64.Vec3{m31, m32, m33},
	))
}

// RotateX returns the rotation by t radians about the X axis.
func RotateX(t float64) Mat3 {
	return Mat3(mgl64.Rotate3DX(t))
}

// RotateY returns the rotation by t radians about the Y axis.
func RotateY(t float64) Mat3 {
	return Mat3(mgl64.Rotate3DY(t))
}

// RotateZ returns the rotation by t radians about the Z axis.
func RotateZ(t float64) Mat3 {
	return Mat3(mgl64.Rotate3DZ(t))
}

// Rotation returns the rotation by t radians about axis (Rodrigues' formula).
// The axis is normalized first, so a zero axis fails with vector.ErrZeroLength.
func Rotation(t float64, axis vector.Vec3) (Mat3, error) {
	n, err := axis.Normalized()
	if err != nil {
		return Mat3{}, fmt.Errorf("rotation axis: %w", err)
	}
	return Mat3(mgl64.HomogRotate3D(t, n.Vec()).Mat3()), nil
}

// Mat3FromDense narrows an m×n matrix, failing unless it is 3×3.
func Mat3FromDense(d *Dense) (Mat3, error) {
	if r, c := d.Dims(); r != 3 || c != 3 {
		return Mat3{}, fmt.Errorf("%w: expected 3x3, got %dx%d", ErrDimensionMismatch, r, c)
	}
	return Mat3Of(
		d.At(0, 0), d.At(0, 1), d.At(0, 2),
		d.At(1, 0), d.At(1, 1), d.At(1, 2),
		d.At(2, 0), d.At(2, 1), d.At(2, 2),
	), nil
}

func (m Mat3) mgl() mgl64.Mat3 {
	return mgl64.Mat3(m)
}

// At returns the component at the given row and column.
func (m Mat3) At(row, col int) float64 {
	return m.mgl().At(row, col)
}

func (m Mat3) Row(i int) vector.Vec3 {
	return vector.Vec3(m.mgl().Row(i))
}

func (m Mat3) Col(j int) vector.Vec3 {
	return vector.Vec3(m.mgl().Col(j))
}

// Mul returns the matrix product m·rhs.
func (m Mat3) Mul(rhs Mat3) Mat3 {
	return Mat3(m.mgl().Mul3(rhs.mgl()))
}

// MulVec returns m·v, treating v as a column vector.
func (m Mat3) MulVec(v vector.Vec3) vector.Vec3 {
	return vector.Vec3(m.mgl().Mul3x1(v.Vec()))
}

func (m Mat3) Scale(n float64) Mat3 {
	return Mat3(m.mgl().Mul(n))
}

func (m Mat3) Add(rhs Mat3) Mat3 {
	return Mat3(m.mgl().Add(rhs.mgl()))
}

func (m Mat3) Transpose() Mat3 {
	return Mat3(m.mgl().Transpose())
}

func (m Mat3) Det() float64 {
	return m.mgl().Det()
}

func (m Mat3) Equal(rhs Mat3) bool {
	return m == rhs
}

func (m Mat3) ApproxEqual(rhs Mat3, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-rhs[i]) > epsilon {
			return false
		}
	}
	return true
}

func (m Mat3) Dense() *Dense {
	return denseOf(3, 3, m.At)
}

func (m Mat3) String() string {
	return format(3, 3, m.At)
}
