// Package dataset loads series identifiers and feature columns from JSON
// documents, optionally gzip or zstd compressed.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
)

var (
	ErrNoSeriesIDs       = errors.New("dataset: no series_ids")
	ErrInvalidIdentifier = errors.New("dataset: series id must be finite or null")
	ErrInvalidFeature    = errors.New("dataset: feature value must be 0, 1 or null")
)

// Dataset is one linkage and the features it is scored against.
// Missing values are coincidence.Missing.
type Dataset struct {
	Name      string
	SeriesIDs []float64
	Features  []coincidence.Feature
}

// document is the on-disk shape; null entries are missing values.
type document struct {
	Name      string                `json:"name"`
	SeriesIDs []*float64            `json:"series_ids"`
	Features  map[string][]*float64 `json:"features"`
}

// Load reads a dataset from path. Files ending in .gz or .zst are
// decompressed first.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	ds, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = filepath.Base(path)
	}

	log.Debug().Str("path", path).Int("records", len(ds.SeriesIDs)).Int("features", len(ds.Features)).Msg("dataset loaded")
	return ds, nil
}

// Decode parses and validates a JSON dataset. Features are sorted by name.
func Decode(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}
	if len(doc.SeriesIDs) == 0 {
		return nil, ErrNoSeriesIDs
	}

	ds := &Dataset{
		Name:      doc.Name,
		SeriesIDs: make([]float64, len(doc.SeriesIDs)),
		Features:  make([]coincidence.Feature, 0, len(doc.Features)),
	}
	for i, id := range doc.SeriesIDs {
		v := unwrap(id)
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("record %d: %w", i, ErrInvalidIdentifier)
		}
		ds.SeriesIDs[i] = v
	}

	for name, raw := range doc.Features {
		if len(raw) != len(ds.SeriesIDs) {
			return nil, fmt.Errorf("feature %q has %d values for %d records: %w",
				name, len(raw), len(ds.SeriesIDs), coincidence.ErrLengthMismatch)
		}
		values := make([]float64, len(raw))
		for i, x := range raw {
			v := unwrap(x)
			if !coincidence.IsMissing(v) && v != 0 && v != 1 {
				return nil, fmt.Errorf("feature %q record %d = %v: %w", name, i, v, ErrInvalidFeature)
			}
			values[i] = v
		}
		ds.Features = append(ds.Features, coincidence.Feature{Name: name, Values: values})
	}

	sort.Slice(ds.Features, func(i, j int) bool {
		return ds.Features[i].Name < ds.Features[j].Name
	})

	return ds, nil
}

func unwrap(v *float64) float64 {
	if v == nil {
		return coincidence.Missing
	}
	return *v
}
