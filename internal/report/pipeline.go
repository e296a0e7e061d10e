package report

import (
	"context"
	"fmt"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
	"github.com/tensorplex-labs/coincidence/internal/dataset"
	"github.com/tensorplex-labs/coincidence/internal/utils/logger"
)

type Pipeline struct {
	Triangle    coincidence.Triangle
	Parallelism int
}

type PipelineOption func(*Pipeline)

func WithTriangle(tri coincidence.Triangle) PipelineOption {
	return func(p *Pipeline) {
		p.Triangle = tri
	}
}

func WithParallelism(n int) PipelineOption {
	return func(p *Pipeline) {
		p.Parallelism = n
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		Triangle: coincidence.Lower,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process scores every feature of ds and returns the raw results together
// with their report.
func (p *Pipeline) Process(ctx context.Context, ds *dataset.Dataset) ([]coincidence.Result, Report, error) {
	logger.Sugar().Infow("Scoring dataset",
		"dataset", ds.Name,
		"records", len(ds.SeriesIDs),
		"features", len(ds.Features),
		"triangle", p.Triangle.String())

	results, err := coincidence.Evaluate(ctx, ds.SeriesIDs, ds.Features,
		coincidence.WithTriangle(p.Triangle),
		coincidence.WithParallelism(p.Parallelism))
	if err != nil {
		return nil, Report{}, fmt.Errorf("score dataset %q: %w", ds.Name, err)
	}

	for _, res := range results {
		if jl, jnl := res.Ratios.Defined(); !jl || !jnl {
			logger.Sugar().Warnw("Ratio not computable from this dataset",
				"dataset", ds.Name,
				"feature", res.Feature,
				"jl_defined", jl,
				"jnl_defined", jnl)
		}
	}

	return results, Build(ds.Name, len(ds.SeriesIDs), p.Triangle, results), nil
}
