package coincidence

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LinkTable builds the n×n table of "same series" indicators for ids.
// Records sharing an identifier are linked. A cell is Unknown when either
// identifier is Missing.
func LinkTable(ids []float64) *Table {
	n := len(ids)
	t := newTable(n)

	diff := make([]float64, n)
	for i, id := range ids {
		// ids - ids[i]: exactly zero where equal, NaN where either side is missing.
		copy(diff, ids)
		floats.AddConst(-id, diff)

		row := t.cells[i*n : (i+1)*n]
		for j, d := range diff {
			switch {
			case math.IsNaN(d):
				row[j] = Unknown
			case d == 0:
				row[j] = One
			default:
				row[j] = Zero
			}
		}
	}

	return t
}

func linkOf(a, b float64) Indicator {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Unknown
	}
	if a == b {
		return One
	}
	return Zero
}
