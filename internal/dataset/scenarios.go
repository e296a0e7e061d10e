package dataset

import "github.com/tensorplex-labs/coincidence/internal/coincidence"

// Scenarios returns small reference linkages with known ratios, used when no
// input file is configured.
func Scenarios() []*Dataset {
	nan := coincidence.Missing
	return []*Dataset{
		{
			Name:      "complete",
			SeriesIDs: []float64{0, 1, 1, 2, 3, 3, 3, 4},
			Features: []coincidence.Feature{
				{Name: "feature", Values: []float64{0, 0, 1, 0, 1, 1, 1, 0}},
			},
		},
		{
			Name:      "shared-series",
			SeriesIDs: []float64{0, 0, 0, 1, 2},
			Features: []coincidence.Feature{
				{Name: "feature", Values: []float64{1, 1, 0, 0, 1}},
			},
		},
		{
			Name:      "missing",
			SeriesIDs: []float64{0, 1, 1, 2, 3, nan, 3, 4},
			Features: []coincidence.Feature{
				{Name: "feature", Values: []float64{0, nan, 1, 0, 1, nan, 1, 0}},
			},
		},
	}
}
