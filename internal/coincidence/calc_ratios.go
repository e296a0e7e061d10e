package coincidence

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CalcRatios reduces index-aligned link and coincidence pairs into the
// linked (JL) and non-linked (JNL) coincidence rates.
//
// A pair is dropped from both vectors when either of its values is Unknown.
// A ratio whose denominator is zero after exclusion is NaN.
//
// CalcRatios panics with ErrPairsLength if the vectors differ in length.
func CalcRatios(link, jacc Pairs) Ratios {
	if len(link) != len(jacc) {
		panic(ErrPairsLength)
	}

	links := make([]float64, 0, len(link))
	jaccs := make([]float64, 0, len(jacc))
	for k := range link {
		if link[k] == Unknown || jacc[k] == Unknown {
			continue
		}
		links = append(links, link[k].Float())
		jaccs = append(jaccs, jacc[k].Float())
	}

	nLinks := floats.Sum(links)
	nJaccs := floats.Sum(jaccs)
	nPairs := float64(len(links))
	// Both are 0/1 here, so the dot product counts pairs that are linked and coincide.
	nJL := floats.Dot(links, jaccs)

	return Ratios{
		JL:          ratio(nJL, nLinks),
		JNL:         ratio(nJaccs-nJL, nPairs-nLinks),
		Pairs:       len(links),
		Links:       int(nLinks),
		Jaccs:       int(nJaccs),
		LinkedJaccs: int(nJL),
		Excluded:    len(link) - len(links),
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}
