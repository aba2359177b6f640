// Package vector provides the fixed-arity vectors (Vec2, Vec3, Vec4) used by the
// rotation and transform packages, and a variable-dimension VecN.
//
// Fixed vectors are value types laid out exactly like their mgl64 counterparts, so
// converting with Vec3.Vec / Vec3(mgl64.Vec3{...}) is free.
package vector

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrZeroLength is returned when normalizing a vector whose length is exactly zero.
	ErrZeroLength = errors.New("vector: normalization of a zero-length vector is undefined")

	// ErrDimensionMismatch is returned by operations combining vectors of different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimensions not compatible")
)

func approxEqual(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func format(components []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
