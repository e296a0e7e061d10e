package report

import (
	"bytes"
	"context"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
	"github.com/tensorplex-labs/coincidence/internal/dataset"
)

type PipelineTestSuite struct {
	suite.Suite
	pipeline *Pipeline
}

func (s *PipelineTestSuite) SetupSuite() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	s.pipeline = NewPipeline(WithTriangle(coincidence.Upper), WithParallelism(2))
}

func (s *PipelineTestSuite) TestOptions() {
	s.Equal(coincidence.Upper, s.pipeline.Triangle)
	s.Equal(2, s.pipeline.Parallelism)

	def := NewPipeline()
	s.Equal(coincidence.Lower, def.Triangle)
	s.Zero(def.Parallelism)
}

func (s *PipelineTestSuite) TestProcessScenarios() {
	want := map[string][2]float64{
		"complete":      {3.0 / 4, 3.0 / 24},
		"shared-series": {1.0 / 3, 2.0 / 7},
		"missing":       {1.0, 2.0 / 17},
	}

	for _, ds := range dataset.Scenarios() {
		results, rep, err := s.pipeline.Process(context.Background(), ds)
		s.Require().NoError(err)
		s.Require().Len(results, 1)

		s.Equal(ds.Name, rep.Dataset)
		s.Equal(len(ds.SeriesIDs), rep.Records)
		s.Equal("upper", rep.Triangle)
		s.Require().Len(rep.Features, 1)

		entry := rep.Features[0]
		s.Require().NotNil(entry.JLRatio)
		s.Require().NotNil(entry.JNLRatio)
		s.InDelta(want[ds.Name][0], *entry.JLRatio, 1e-12)
		s.InDelta(want[ds.Name][1], *entry.JNLRatio, 1e-12)
		s.Equal(results[0].Ratios.Pairs, entry.Pairs)
	}
}

func (s *PipelineTestSuite) TestProcessLengthMismatch() {
	ds := &dataset.Dataset{
		Name:      "broken",
		SeriesIDs: []float64{1, 2, 3},
		Features:  []coincidence.Feature{{Name: "f", Values: []float64{1}}},
	}

	_, _, err := s.pipeline.Process(context.Background(), ds)
	s.ErrorIs(err, coincidence.ErrLengthMismatch)
	s.Contains(err.Error(), "broken")
}

func (s *PipelineTestSuite) TestWriteJSONEncodesUndefinedAsNull() {
	results := []coincidence.Result{
		{Feature: "never-linked", Ratios: coincidence.Ratios{JL: math.NaN(), JNL: 0.25, Pairs: 4, Jaccs: 1}},
	}
	rep := Build("demo", 3, coincidence.Lower, results)
	s.Nil(rep.Features[0].JLRatio)

	var buf bytes.Buffer
	s.Require().NoError(WriteJSON(&buf, []Report{rep}))
	s.Contains(buf.String(), `"jl_ratio":null`)
	s.True(strings.HasSuffix(buf.String(), "\n"))

	var decoded []Report
	s.Require().NoError(sonic.Unmarshal(buf.Bytes(), &decoded))
	s.Require().Len(decoded, 1)
	s.Equal("lower", decoded[0].Triangle)
	s.Nil(decoded[0].Features[0].JLRatio)
	s.Require().NotNil(decoded[0].Features[0].JNLRatio)
	s.InDelta(0.25, *decoded[0].Features[0].JNLRatio, 1e-12)
}

func (s *PipelineTestSuite) TestPlot() {
	results := []coincidence.Result{
		{Feature: "undefined", Ratios: coincidence.Ratios{JL: math.NaN(), JNL: math.NaN()}},
		{Feature: "weak", Ratios: coincidence.Ratios{JL: 0.1, JNL: 0}},
		{Feature: "strong", Ratios: coincidence.Ratios{JL: 1, JNL: 0.5}},
	}

	var buf bytes.Buffer
	Plot(&buf, "Scenario", results)
	out := buf.String()

	s.Contains(out, "Scenario:")
	s.Contains(out, "n/a")
	s.Contains(out, strings.Repeat("█", maxBarWidth)+" (1.0000)")
	s.Contains(out, "▏ (0.0000)")
	s.Less(strings.Index(out, "strong"), strings.Index(out, "weak"))
	s.Less(strings.Index(out, "weak"), strings.Index(out, "undefined"))

	// input order is left alone
	s.Equal("undefined", results[0].Feature)
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
