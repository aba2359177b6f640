// Package matrix provides square matrices (Mat2, Mat3, Mat4) and a general m×n Dense
// matrix.
//
// Square matrices are value types stored column-major like mgl64, but every
// constructor and accessor in this package is expressed in row-major, (row, column)
// order: Mat3Of(m11, m12, m13, m21, ...) lists the first row first.
// Vectors are treated as column vectors, so M.MulVec(v) computes M·v.
package matrix

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible for an operation.
	ErrDimensionMismatch = errors.New("matrix: dimensions not compatible")

	// ErrShape is returned when the supplied components cannot form the requested matrix.
	ErrShape = errors.New("matrix: invalid shape")
)

func format(rows, cols int, at func(i, j int) float64) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(at(i, j), 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
