package dataset

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
)

const sampleDocument = `{
	"name": "burglaries",
	"series_ids": [0, 1, 1, 2, 3, null, 3, 4],
	"features": {
		"weapon": [0, null, 1, 0, 1, null, 1, 0],
		"alarm":  [1, 1, 0, 0, 1, 0, 0, 1]
	}
}`

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "burglaries", ds.Name)
	require.Len(t, ds.SeriesIDs, 8)
	assert.True(t, coincidence.IsMissing(ds.SeriesIDs[5]))
	assert.Equal(t, 3.0, ds.SeriesIDs[6])

	require.Len(t, ds.Features, 2)
	assert.Equal(t, "alarm", ds.Features[0].Name)
	assert.Equal(t, "weapon", ds.Features[1].Name)
	assert.True(t, coincidence.IsMissing(ds.Features[1].Values[1]))
	assert.Equal(t, 1.0, ds.Features[1].Values[2])

	r := coincidence.Score(ds.SeriesIDs, ds.Features[1].Values)
	assert.InDelta(t, 1.0, r.JL, 1e-12)
	assert.InDelta(t, 2.0/17, r.JNL, 1e-12)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no ids", `{"series_ids": [], "features": {}}`, ErrNoSeriesIDs},
		{"short feature", `{"series_ids": [1, 2], "features": {"f": [1]}}`, coincidence.ErrLengthMismatch},
		{"non-binary feature", `{"series_ids": [1, 2], "features": {"f": [1, 2]}}`, ErrInvalidFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"series_ids": [1,`))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "cases.json")
	require.NoError(t, os.WriteFile(plain, []byte(sampleDocument), 0o600))

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	_, err := gw.Write([]byte(sampleDocument))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	gzPath := filepath.Join(dir, "cases.json.gz")
	require.NoError(t, os.WriteFile(gzPath, gzBuf.Bytes(), 0o600))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstPath := filepath.Join(dir, "cases.json.zst")
	require.NoError(t, os.WriteFile(zstPath, enc.EncodeAll([]byte(sampleDocument), nil), 0o600))
	require.NoError(t, enc.Close())

	for _, path := range []string{plain, gzPath, zstPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ds, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "burglaries", ds.Name)
			assert.Len(t, ds.SeriesIDs, 8)
			assert.Len(t, ds.Features, 2)
		})
	}
}

func TestLoadNamesFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"series_ids": [1, 1]}`), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed.json", ds.Name)
	assert.Empty(t, ds.Features)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestScenarios(t *testing.T) {
	want := [][2]float64{
		{3.0 / 4, 3.0 / 24},
		{1.0 / 3, 2.0 / 7},
		{1.0, 2.0 / 17},
	}

	scenarios := Scenarios()
	require.Len(t, scenarios, len(want))
	for i, ds := range scenarios {
		t.Run(ds.Name, func(t *testing.T) {
			require.Len(t, ds.Features, 1)
			r := coincidence.Score(ds.SeriesIDs, ds.Features[0].Values)
			assert.InDelta(t, want[i][0], r.JL, 1e-12)
			assert.InDelta(t, want[i][1], r.JNL, 1e-12)
		})
	}
}
