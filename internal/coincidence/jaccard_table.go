package coincidence

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JaccardTable builds the n×n table of 1,1 coincidences in feature.
// A 0 in either record forces the cell to Zero, even when the other record
// is Missing; otherwise a Missing value makes the cell Unknown.
func JaccardTable(feature []float64) *Table {
	n := len(feature)
	if n == 0 {
		return newTable(0)
	}

	v := mat.NewVecDense(n, append([]float64(nil), feature...))

	var outer mat.Dense
	outer.Outer(1, v, v)

	// The outer product lets NaN leak into cells that a 0 must own.
	zeros := make([]float64, n)
	for i, x := range feature {
		if x == 0 {
			outer.SetRow(i, zeros)
			outer.SetCol(i, zeros)
		}
	}

	return tableFromDense(&outer)
}

func coincidenceOf(a, b float64) Indicator {
	if a == 0 || b == 0 {
		return Zero
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return Unknown
	}
	return One
}
