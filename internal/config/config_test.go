package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/histnd/internal/histogram"
	"github.com/born-ml/histnd/internal/tensor"
)

const twoDims = `
sample_type: float32
weight_type: int32
last_bin_closed: true
weight_min: 1
dims:
  - {min: 0, max: 10, bins: 5}
  - {min: -1, max: 1, bins: 4}
`

func TestParse_Layout(t *testing.T) {
	t.Setenv("HISTND_LOG_LEVEL", "")

	cfg, err := Parse([]byte(twoDims))
	require.NoError(t, err)

	layout := cfg.Layout()
	assert.Equal(t, []float64{0, 10, -1, 1}, layout.Ranges)
	assert.Equal(t, []int{5, 4}, layout.Bins)

	sample, weight := cfg.Types()
	assert.Equal(t, tensor.Float32, sample)
	assert.Equal(t, tensor.Int32, weight)

	opts := cfg.Options()
	assert.Equal(t, histogram.FlagLastBinClosed|histogram.FlagWeightMin, opts.Flags)
	assert.Equal(t, 1.0, opts.WeightMin)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("HISTND_LOG_LEVEL", "")

	cfg, err := Parse([]byte("dims: [{min: 0, max: 1, bins: 2}]"))
	require.NoError(t, err)

	sample, weight := cfg.Types()
	assert.Equal(t, tensor.Float64, sample)
	assert.Equal(t, tensor.Float64, weight)
	assert.Equal(t, histogram.FlagNone, cfg.Options().Flags)
}

func TestParse_LogLevelFromEnv(t *testing.T) {
	t.Setenv("HISTND_LOG_LEVEL", "debug")

	cfg, err := Parse([]byte("log_level: warn\ndims: [{min: 0, max: 1, bins: 2}]"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_ReportsAllProblems(t *testing.T) {
	doc := `
sample_type: complex64
weight_type: uint32
weight_min: 5
weight_max: 1
dims:
  - {min: 1, max: 0, bins: 3}
  - {min: 0, max: 1, bins: 0}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	assert.ErrorIs(t, err, histogram.ErrInvalidRange)
	assert.ErrorIs(t, err, histogram.ErrInvalidBinCount)
	assert.Contains(t, err.Error(), "sample_type")
	assert.Contains(t, err.Error(), "weight_type")
	assert.Contains(t, err.Error(), "weight_min")
}

func TestParse_NoDims(t *testing.T) {
	_, err := Parse([]byte("sample_type: float64"))
	assert.ErrorContains(t, err, "at least one dimension")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("dims: [oops"))
	assert.ErrorContains(t, err, "parse layout")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoDims), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Dims, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read layout")
}
