package matrix

import (
	"fmt"
	"slices"

	"github.com/akmonengine/spatial/vector"
	"gonum.org/v1/gonum/mat"
)

// Dense is an immutable m×n matrix.
type Dense struct {
	m *mat.Dense
}

// NewDense builds a rows×cols matrix from components in row-major order.
// The data is copied.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d components, got %d", ErrShape, rows, cols, rows*cols, len(data))
	}
	return &Dense{m: mat.NewDense(rows, cols, slices.Clone(data))}, nil
}

// Rows builds a matrix from equally sized rows.
func Rows(rows ...[]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	n := len(rows[0])
	data := make([]float64, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d components, want %d", ErrShape, i, len(row), n)
		}
		data = append(data, row...)
	}
	return NewDense(len(rows), n, data)
}

// Column returns v as an n×1 matrix.
func Column(v vector.VecN) (*Dense, error) {
	return NewDense(v.Dim(), 1, v.Components())
}

// Row returns v as a 1×n matrix.
func Row(v vector.VecN) (*Dense, error) {
	return NewDense(1, v.Dim(), v.Components())
}

func denseOf(rows, cols int, at func(i, j int) float64) *Dense {
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, at(i, j))
		}
	}
	return &Dense{m: d}
}

func (d *Dense) Dims() (rows, cols int) {
	return d.m.Dims()
}

// At returns the component at (row, col). It panics when out of range.
func (d *Dense) At(row, col int) float64 {
	return d.m.At(row, col)
}

// Components returns a row-major copy of the matrix data.
func (d *Dense) Components() []float64 {
	r, c := d.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, mat.Row(nil, i, d.m)...)
	}
	return out
}

func (d *Dense) Row(i int) vector.VecN {
	return vector.NewVecN(mat.Row(nil, i, d.m)...)
}

func (d *Dense) Col(j int) vector.VecN {
	return vector.NewVecN(mat.Col(nil, j, d.m)...)
}

// Mul returns the product d·rhs of an m×n and an n×p matrix.
func (d *Dense) Mul(rhs *Dense) (*Dense, error) {
	m, n := d.Dims()
	rn, p := rhs.Dims()
	if n != rn {
		return nil, fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, m, n, rn, p)
	}
	var out mat.Dense
	out.Mul(d.m, rhs.m)
	return &Dense{m: &out}, nil
}

// MulVec returns d·v, treating v as a column vector.
func (d *Dense) MulVec(v vector.VecN) (vector.VecN, error) {
	col, err := Column(v)
	if err != nil {
		return vector.VecN{}, err
	}
	prod, err := d.Mul(col)
	if err != nil {
		return vector.VecN{}, err
	}
	return prod.Col(0), nil
}

func (d *Dense) Add(rhs *Dense) (*Dense, error) {
	m, n := d.Dims()
	rm, rn := rhs.Dims()
	if m != rm || n != rn {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrDimensionMismatch, m, n, rm, rn)
	}
	var out mat.Dense
	out.Add(d.m, rhs.m)
	return &Dense{m: &out}, nil
}

func (d *Dense) Scale(n float64) *Dense {
	var out mat.Dense
	out.Scale(n, d.m)
	return &Dense{m: &out}
}

func (d *Dense) Transpose() *Dense {
	return &Dense{m: mat.DenseCopyOf(d.m.T())}
}

// Equal reports whether both matrices have the same shape and identical components.
func (d *Dense) Equal(rhs *Dense) bool {
	return mat.Equal(d.m, rhs.m)
}

func (d *Dense) ApproxEqual(rhs *Dense, epsilon float64) bool {
	return mat.EqualApprox(d.m, rhs.m, epsilon)
}

func (d *Dense) String() string {
	r, c := d.Dims()
	return format(r, c, d.At)
}
