package vector

import (
	"errors"
	"math"
	"testing"
)

// =============================================================================
// Vec3 Tests
// =============================================================================

func TestVec3_Components(t *testing.T) {
	v := V3(1.5, -2, 3.25)

	if v.X() != v.Component(0) || v.Y() != v.Component(1) || v.Z() != v.Component(2) {
		t.Errorf("accessors disagree with Component(): %v", v)
	}

	cs := v.Components()
	cs[0] = 99
	if v.X() != 1.5 {
		t.Error("Components() must return a copy")
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(-3, 2.5, 5)},
		{"sub", a.Sub(b), V3(5, 1.5, 1)},
		{"neg", a.Neg(), V3(-1, -2, -3)},
		{"mul", a.Mul(2), V3(2, 4, 6)},
		{"cross x*y", XAxis.Cross(YAxis), ZAxis},
		{"cross y*z", YAxis.Cross(ZAxis), XAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if dot := a.Dot(b); dot != 1*-4+2*0.5+3*2 {
		t.Errorf("Dot() = %v, want %v", dot, 1*-4+2*0.5+3*2)
	}
}

func TestVec3_Normalized(t *testing.T) {
	t.Run("non-zero vector", func(t *testing.T) {
		n, err := V3(3, 0, 4).Normalized()
		if err != nil {
			t.Fatalf("Normalized() error = %v", err)
		}
		if !n.ApproxEqual(V3(0.6, 0, 0.8), 1e-12) {
			t.Errorf("Normalized() = %v, want [0.6, 0, 0.8]", n)
		}
		if math.Abs(n.Len()-1) > 1e-12 {
			t.Errorf("Len() = %v, want 1", n.Len())
		}
	})

	t.Run("zero vector", func(t *testing.T) {
		_, err := Zero3.Normalized()
		if !errors.Is(err, ErrZeroLength) {
			t.Errorf("Normalized() error = %v, want ErrZeroLength", err)
		}
	})
}

func TestVec3_String(t *testing.T) {
	if s := V3(1, -0.5, 2).String(); s != "[1, -0.5, 2]" {
		t.Errorf("String() = %q", s)
	}
}

func TestVec3FromN(t *testing.T) {
	v, err := Vec3FromN(NewVecN(1, 2, 3))
	if err != nil || !v.Equal(V3(1, 2, 3)) {
		t.Errorf("Vec3FromN() = %v, %v", v, err)
	}

	if _, err := Vec3FromN(NewVecN(1, 2)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Vec3FromN() error = %v, want ErrDimensionMismatch", err)
	}
}

// =============================================================================
// Vec2 / Vec4 Tests
// =============================================================================

func TestVec2_Ops(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -1)

	if !a.Add(b).Equal(V2(4, 1)) {
		t.Errorf("Add() = %v", a.Add(b))
	}
	if !a.Neg().Equal(V2(-1, -2)) {
		t.Errorf("Neg() = %v", a.Neg())
	}
	if a.Dot(b) != 1 {
		t.Errorf("Dot() = %v, want 1", a.Dot(b))
	}
	if _, err := Zero2.Normalized(); !errors.Is(err, ErrZeroLength) {
		t.Errorf("Normalized() error = %v", err)
	}
}

func TestVec4_Ops(t *testing.T) {
	a := V4(1, 2, 3, 4)
	b := V4(0.5, 0.5, 0.5, 0.5)

	if !a.Add(b).Equal(V4(1.5, 2.5, 3.5, 4.5)) {
		t.Errorf("Add() = %v", a.Add(b))
	}
	if !a.Mul(-1).Equal(a.Neg()) {
		t.Errorf("Mul(-1) = %v, Neg() = %v", a.Mul(-1), a.Neg())
	}
	if a.Dot(b) != 5 {
		t.Errorf("Dot() = %v, want 5", a.Dot(b))
	}
	if a.W() != 4 {
		t.Errorf("W() = %v", a.W())
	}
	n, err := WAxis4.Mul(3).Normalized()
	if err != nil || !n.Equal(WAxis4) {
		t.Errorf("Normalized() = %v, %v", n, err)
	}
}

// =============================================================================
// VecN Tests
// =============================================================================

func TestVecN_CopiesInput(t *testing.T) {
	data := []float64{1, 2, 3}
	v := NewVecN(data...)
	data[0] = 42

	if v.At(0) != 1 {
		t.Errorf("At(0) = %v, want 1", v.At(0))
	}
}

func TestVecN_DimensionMismatch(t *testing.T) {
	a := NewVecN(1, 2, 3)
	b := NewVecN(1, 2)

	if _, err := a.Add(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add() error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := a.Dot(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Dot() error = %v, want ErrDimensionMismatch", err)
	}
	if a.Equal(b) {
		t.Error("vectors of different dimensions must not be equal")
	}
}

func TestVecN_Ops(t *testing.T) {
	a := NewVecN(1, 2, 3, 4, 5)
	b := NewVecN(5, 4, 3, 2, 1)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !sum.Equal(NewVecN(6, 6, 6, 6, 6)) {
		t.Errorf("Add() = %v", sum)
	}

	dot, err := a.Dot(b)
	if err != nil || dot != 35 {
		t.Errorf("Dot() = %v, %v, want 35", dot, err)
	}

	if !a.Neg().Equal(NewVecN(-1, -2, -3, -4, -5)) {
		t.Errorf("Neg() = %v", a.Neg())
	}

	n, err := NewVecN(0, 3, 4).Normalized()
	if err != nil || !n.ApproxEqual(NewVecN(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Normalized() = %v, %v", n, err)
	}

	if _, err := NewVecN(0, 0).Normalized(); !errors.Is(err, ErrZeroLength) {
		t.Errorf("Normalized() error = %v", err)
	}
}

func TestVecN_String(t *testing.T) {
	if s := NewVecN(1, 2.5).String(); s != "[1, 2.5]" {
		t.Errorf("String() = %q", s)
	}
	if s := NewVecN().String(); s != "[]" {
		t.Errorf("String() = %q", s)
	}
}
