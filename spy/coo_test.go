package spy

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCOOAppendAndAt(t *testing.T) {
	a := NewCOO(2, 3)
	a.Append(0, 1, 2.5)
	a.Append(1, 2, -1)
	a.Append(0, 1, 0.5) // duplicate

	if a.NNZ() != 3 {
		t.Errorf("nnz: got %d want 3", a.NNZ())
	}
	if a.At(0, 1) != 3.0 {
		t.Errorf("At(0,1): got %v want 3 (duplicates sum)", a.At(0, 1))
	}
	if a.At(1, 0) != 0 {
		t.Errorf("At(1,0): got %v want 0", a.At(1, 0))
	}
	r, c := a.Dims()
	if r != 2 || c != 3 {
		t.Errorf("dims: got %d,%d want 2,3", r, c)
	}
}

func TestCOOAppendOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a row index outside the declared size")
		}
	}()
	a := NewCOO(2, 2)
	a.Append(2, 0, 1)
}

func TestCOODense(t *testing.T) {
	a := NewCOO(2, 2)
	a.Append(0, 0, 1)
	a.Append(0, 0, 2)
	a.Append(1, 1, 5)

	d := a.Dense()
	if d.At(0, 0) != 3 {
		t.Errorf("dense at 0,0: got %v want 3", d.At(0, 0))
	}
	if d.At(0, 1) != 0 || d.At(1, 0) != 0 {
		t.Error("unstored positions should be 0")
	}
	if d.At(1, 1) != 5 {
		t.Errorf("dense at 1,1: got %v want 5", d.At(1, 1))
	}
}

func TestFromMatrix(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0, 4, -2, 0})
	a := FromMatrix(d)
	if a.NNZ() != 2 {
		t.Fatalf("nnz: got %d want 2", a.NNZ())
	}
	if a.At(0, 1) != 4 || a.At(1, 0) != -2 {
		t.Error("extracted entries do not match the source matrix")
	}
	h, w := a.Dims()
	if h != 2 || w != 2 {
		t.Errorf("dims: got %d,%d want 2,2", h, w)
	}
}

func TestCOOAsGonumMatrix(t *testing.T) {
	// COO satisfies mat.Matrix, so gonum can consume it directly
	a := NewCOO(2, 2)
	a.Append(0, 1, 7)
	var m mat.Matrix = a
	if m.T().At(1, 0) != 7 {
		t.Error("transpose view does not match")
	}
}
