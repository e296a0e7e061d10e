package coincidence

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type evaluateOptions struct {
	triangle    Triangle
	parallelism int
}

type EvaluateOption func(*evaluateOptions)

// WithTriangle selects the triangle both pair vectors are unraveled from.
func WithTriangle(tri Triangle) EvaluateOption {
	return func(o *evaluateOptions) {
		o.triangle = tri
	}
}

// WithParallelism caps the number of features scored at once. Values below 1
// fall back to GOMAXPROCS.
func WithParallelism(n int) EvaluateOption {
	return func(o *evaluateOptions) {
		o.parallelism = n
	}
}

// Evaluate scores one linkage against every feature. Results keep the order
// of features. The link pairs are computed once and shared read-only by all
// workers.
func Evaluate(ctx context.Context, ids []float64, features []Feature, opts ...EvaluateOption) ([]Result, error) {
	o := evaluateOptions{triangle: Lower}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	for _, f := range features {
		if len(f.Values) != len(ids) {
			return nil, fmt.Errorf("feature %q has %d values for %d records: %w", f.Name, len(f.Values), len(ids), ErrLengthMismatch)
		}
	}

	startTime := time.Now()
	linkPairs := LinkPairs(ids, o.triangle)
	results := make([]Result, len(features))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, f := range features {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := CalcRatios(linkPairs, JaccardPairs(f.Values, o.triangle))
			results[i] = Result{Feature: f.Name, Ratios: r}
			log.Debug().
				Str("feature", f.Name).
				Float64("jl_ratio", r.JL).
				Float64("jnl_ratio", r.JNL).
				Int("pairs", r.Pairs).
				Int("excluded", r.Excluded).
				Msg("feature scored")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate features: %w", err)
	}

	log.Debug().Msgf("Scored %d features over %d records in %v", len(features), len(ids), time.Since(startTime))
	return results, nil
}
