package spy

import (
	"gonum.org/v1/gonum/mat"
)

// COO is a sparse matrix in coordinate format: parallel lists of row index,
// column index and value, plus the declared size of the matrix. The declared
// size is independent of the populated extent - trailing empty rows and
// columns still count.
//
// Entries for the same position are kept as-is. They are only combined when
// the matrix is read through At or accumulated into a dense matrix.
type COO struct {
	Height, Width int
	Rows, Cols    []int
	Vals          []float64
}

func NewCOO(height, width int) *COO {
	return &COO{Height: height, Width: width}
}

// adds an entry. Indices outside the declared size are a programming error.
func (a *COO) Append(i, j int, v float64) {
	if i < 0 || a.Height <= i {
		panic("row index out of range")
	}
	if j < 0 || a.Width <= j {
		panic("column index out of range")
	}
	a.Rows = append(a.Rows, i)
	a.Cols = append(a.Cols, j)
	a.Vals = append(a.Vals, v)
}

// the number of stored entries (duplicates included)
func (a *COO) NNZ() int {
	return len(a.Vals)
}

func (a *COO) Dims() (r, c int) {
	return a.Height, a.Width
}

// At returns the value at row i, column j, summing duplicate entries.
// It is a linear scan - fine for inspection and tests, not for solvers.
func (a *COO) At(i, j int) float64 {
	if i < 0 || a.Height <= i {
		panic("row index out of range")
	}
	if j < 0 || a.Width <= j {
		panic("column index out of range")
	}
	var v float64
	for k := range a.Vals {
		if a.Rows[k] == i && a.Cols[k] == j {
			v += a.Vals[k]
		}
	}
	return v
}

func (a *COO) T() mat.Matrix {
	return mat.Transpose{Matrix: a}
}

// Dense accumulates the entries into a dense Height x Width matrix.
// Positions with no stored entry are zero; duplicates sum.
func (a *COO) Dense() *mat.Dense {
	d := mat.NewDense(a.Height, a.Width, nil)
	for k := range a.Vals {
		d.Set(a.Rows[k], a.Cols[k], d.At(a.Rows[k], a.Cols[k])+a.Vals[k])
	}
	return d
}

// FromMatrix extracts the nonzero entries of any matrix into coordinate form.
func FromMatrix(m mat.Matrix) *COO {
	r, c := m.Dims()
	a := NewCOO(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				a.Append(i, j, v)
			}
		}
	}
	return a
}
