// Package report turns coincidence results into JSON reports and terminal
// plots, and drives scoring runs over whole datasets.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/bytedance/sonic"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
)

func Build(dataset string, records int, tri coincidence.Triangle, results []coincidence.Result) Report {
	r := Report{
		Dataset:  dataset,
		Records:  records,
		Triangle: tri.String(),
		Features: make([]Entry, len(results)),
	}
	for i, res := range results {
		r.Features[i] = Entry{
			Feature:     res.Feature,
			JLRatio:     definedOrNil(res.Ratios.JL),
			JNLRatio:    definedOrNil(res.Ratios.JNL),
			Pairs:       res.Ratios.Pairs,
			Links:       res.Ratios.Links,
			Jaccs:       res.Ratios.Jaccs,
			LinkedJaccs: res.Ratios.LinkedJaccs,
			Excluded:    res.Ratios.Excluded,
		}
	}
	return r
}

// WriteJSON encodes reports as a JSON array followed by a newline.
func WriteJSON(w io.Writer, reports []Report) error {
	data, err := sonic.Marshal(reports)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func definedOrNil(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
