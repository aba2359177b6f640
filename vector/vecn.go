package vector

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// VecN is an immutable vector of any dimension.
type VecN struct {
	components []float64
}

// NewVecN copies components into a new vector.
func NewVecN(components ...float64) VecN {
	return VecN{components: slices.Clone(components)}
}

func (v VecN) Dim() int {
	return len(v.components)
}

func (v VecN) At(i int) float64 {
	return v.components[i]
}

func (v VecN) Components() []float64 {
	return slices.Clone(v.components)
}

func (v VecN) Add(rhs VecN) (VecN, error) {
	if err := v.checkDim(rhs); err != nil {
		return VecN{}, err
	}
	dst := make([]float64, v.Dim())
	floats.AddTo(dst, v.components, rhs.components)
	return VecN{components: dst}, nil
}

func (v VecN) Dot(rhs VecN) (float64, error) {
	if err := v.checkDim(rhs); err != nil {
		return 0, err
	}
	return floats.Dot(v.components, rhs.components), nil
}

func (v VecN) Neg() VecN {
	return v.Mul(-1)
}

func (v VecN) Mul(n float64) VecN {
	dst := make([]float64, v.Dim())
	floats.ScaleTo(dst, n, v.components)
	return VecN{components: dst}
}

func (v VecN) Len() float64 {
	return floats.Norm(v.components, 2)
}

func (v VecN) Normalized() (VecN, error) {
	l := v.Len()
	if l == 0 {
		return VecN{}, ErrZeroLength
	}
	return v.Mul(1.0 / l), nil
}

// Equal reports exact equality; vectors of different dimensions are never equal.
func (v VecN) Equal(rhs VecN) bool {
	return floats.Equal(v.components, rhs.components)
}

func (v VecN) ApproxEqual(rhs VecN, epsilon float64) bool {
	return approxEqual(v.components, rhs.components, epsilon)
}

func (v VecN) String() string {
	return format(v.components)
}

func (v VecN) checkDim(rhs VecN) error {
	if v.Dim() != rhs.Dim() {
		return fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, v.Dim(), rhs.Dim())
	}
	return nil
}
