package coincidence

import (
	"gonum.org/v1/gonum/mat"
)

// Table is a square matrix of Indicator cells stored row-major.
type Table struct {
	n     int
	cells []Indicator
}

func newTable(n int) *Table {
	return &Table{n: n, cells: make([]Indicator, n*n)}
}

// tableFromDense converts a dense 0/1/NaN matrix into a Table.
func tableFromDense(d *mat.Dense) *Table {
	r, c := d.Dims()
	if r != c {
		panic(mat.ErrShape)
	}
	t := newTable(r)
	raw := d.RawMatrix()
	for i := 0; i < r; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+c]
		for j, v := range row {
			t.cells[i*t.n+j] = IndicatorOf(v)
		}
	}
	return t
}

func (t *Table) Dims() (r, c int) {
	return t.n, t.n
}

// At returns the cell at row i, column j. It panics when either index is out
// of range.
func (t *Table) At(i, j int) Indicator {
	if uint(i) >= uint(t.n) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(t.n) {
		panic(mat.ErrColAccess)
	}
	return t.cells[i*t.n+j]
}

// T returns the transpose of t as a new Table.
func (t *Table) T() *Table {
	u := newTable(t.n)
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			u.cells[j*t.n+i] = t.cells[i*t.n+j]
		}
	}
	return u
}

func (t *Table) IsSymmetric() bool {
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if t.cells[i*t.n+j] != t.cells[j*t.n+i] {
				return false
			}
		}
	}
	return true
}

// Equal reports whether t and u have the same size and cells. Unknown cells
// compare equal to each other here, unlike in the builders' own semantics.
func (t *Table) Equal(u *Table) bool {
	if t.n != u.n {
		return false
	}
	for k, x := range t.cells {
		if u.cells[k] != x {
			return false
		}
	}
	return true
}

// Dense exports t as a gonum matrix with Unknown cells set to NaN. An empty
// table yields an empty Dense.
func (t *Table) Dense() *mat.Dense {
	if t.n == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(t.cells))
	for k, x := range t.cells {
		data[k] = x.Float()
	}
	return mat.NewDense(t.n, t.n, data)
}

// Pairs unravels the strict triangle tri of t into a flat vector.
func (t *Table) Pairs(tri Triangle) Pairs {
	out := make(Pairs, 0, NumPairs(t.n))
	forEachPair(t.n, tri, func(i, j int) {
		out = append(out, t.cells[i*t.n+j])
	})
	return out
}

// forEachPair visits the strict triangle of an n×n matrix in unraveling order.
func forEachPair(n int, tri Triangle, fn func(i, j int)) {
	switch tri {
	case Upper:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				fn(i, j)
			}
		}
	default:
		for i := 1; i < n; i++ {
			for j := 0; j < i; j++ {
				fn(i, j)
			}
		}
	}
}
