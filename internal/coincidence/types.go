package coincidence

import (
	"fmt"
	"math"
	"strings"
)

// Indicator is a three-valued table cell: a definite 0, a definite 1, or
// Unknown when the inputs it was derived from were not observed.
type Indicator uint8

const (
	Zero Indicator = iota
	One
	Unknown
)

// Missing is the missing-value marker for identifier and feature vectors.
// It never compares equal to anything, itself included.
var Missing = math.NaN()

// IsMissing reports whether v is the missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// IndicatorOf maps a numeric cell to an Indicator: NaN is Unknown, 0 is Zero
// and any other value is One.
func IndicatorOf(v float64) Indicator {
	switch {
	case math.IsNaN(v):
		return Unknown
	case v == 0:
		return Zero
	default:
		return One
	}
}

// Float returns 0 or 1, or NaN for Unknown.
func (x Indicator) Float() float64 {
	switch x {
	case Zero:
		return 0
	case One:
		return 1
	default:
		return math.NaN()
	}
}

func (x Indicator) String() string {
	switch x {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "?"
	}
}

// Triangle selects which off-diagonal half of a symmetric table is unraveled
// into a pair vector.
type Triangle int

const (
	// Lower visits (1,0), (2,0), (2,1), (3,0), ... row by row.
	Lower Triangle = iota
	// Upper visits (0,1), (0,2), ..., (1,2), ... row by row.
	Upper
)

func (t Triangle) String() string {
	switch t {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Triangle(%d)", int(t))
	}
}

// ParseTriangle accepts "lower" or "upper", case-insensitively.
func ParseTriangle(s string) (Triangle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTriangle, s)
}

// Pairs is the off-diagonal, single-triangle unraveling of a table.
type Pairs []Indicator

// NumPairs is the number of off-diagonal pairs in one triangle of an n×n table.
func NumPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Floats converts p to 0/1/NaN values, e.g. for export next to a mat.Dense.
func (p Pairs) Floats() []float64 {
	out := make([]float64, len(p))
	for i, x := range p {
		out[i] = x.Float()
	}
	return out
}

// Ratios is the outcome of reducing aligned link and coincidence pairs.
// A ratio is NaN when its denominator is zero after exclusion.
type Ratios struct {
	JL          float64 // linked pairs that coincide / linked pairs
	JNL         float64 // non-linked pairs that coincide / non-linked pairs
	Pairs       int     // fully observed pairs
	Links       int     // observed pairs with link = 1
	Jaccs       int     // observed pairs with coincidence = 1
	LinkedJaccs int     // observed pairs with both = 1
	Excluded    int     // pairs dropped because either value was unknown
}

// Defined reports which of the two ratios could be computed.
func (r Ratios) Defined() (jl, jnl bool) {
	return !math.IsNaN(r.JL), !math.IsNaN(r.JNL)
}

// Feature is a named binary-or-missing column scored against one linkage.
type Feature struct {
	Name   string
	Values []float64
}

// Result pairs a feature name with its ratios.
type Result struct {
	Feature string
	Ratios  Ratios
}
