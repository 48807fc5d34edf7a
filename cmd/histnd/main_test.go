package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/born-ml/histnd/histogram"
	"github.com/born-ml/histnd/internal/config"
	"github.com/born-ml/histnd/tensor"
)

func TestBin_Unweighted1D(t *testing.T) {
	cfg, err := config.Parse([]byte("last_bin_closed: true\ndims: [{min: 0, max: 10, bins: 5}]"))
	require.NoError(t, err)

	in := strings.NewReader("0 1 2 3 4\n5 6 7 8 9\n10\n")
	var out bytes.Buffer
	require.NoError(t, bin(cfg, false, in, &out, zap.NewNop()))

	want := "0\t0\t2\t2\n" +
		"1\t2\t2\t2\n" +
		"2\t4\t2\t2\n" +
		"3\t6\t2\t2\n" +
		"4\t8\t3\t3\n"
	assert.Equal(t, want, out.String())
}

func TestBin_Weighted2D(t *testing.T) {
	doc := `
sample_type: int32
weight_type: float32
weight_max: 3
dims:
  - {min: 0, max: 2, bins: 2}
  - {min: 0, max: 2, bins: 2}
`
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	in := strings.NewReader("0 0 0.5\n1 1 2.5\n1 0 4\n")
	var out bytes.Buffer
	require.NoError(t, bin(cfg, true, in, &out, zap.NewNop()))

	want := "0,0\t0,0\t1\t0.5\n" +
		"0,1\t0,1\t0\t0\n" +
		"1,0\t1,0\t0\t0\n" +
		"1,1\t1,1\t1\t2.5\n"
	assert.Equal(t, want, out.String())
}

func TestBin_BadInput(t *testing.T) {
	cfg, err := config.Parse([]byte("dims: [{min: 0, max: 1, bins: 2}, {min: 0, max: 1, bins: 2}]"))
	require.NoError(t, err)

	err = bin(cfg, false, strings.NewReader("0.1 0.2 0.3"), &bytes.Buffer{}, zap.NewNop())
	assert.ErrorContains(t, err, "not a multiple")

	err = bin(cfg, false, strings.NewReader("0.1 abc"), &bytes.Buffer{}, zap.NewNop())
	assert.ErrorContains(t, err, "samples")
}

func TestBin_EmptyInput(t *testing.T) {
	cfg, err := config.Parse([]byte("dims: [{min: 0, max: 1, bins: 2}]"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, bin(cfg, false, strings.NewReader(""), &out, zap.NewNop()))
	assert.Equal(t, "0\t0\t0\t0\n1\t0.5\t0\t0\n", out.String())
}

func TestRunBin(t *testing.T) {
	t.Setenv("HISTND_LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dims: [{min: 0, max: 4, bins: 2}]"), 0o600))

	var out bytes.Buffer
	require.NoError(t, runBin([]string{"-layout", path}, strings.NewReader("1 3 3.5"), &out))
	assert.Equal(t, "0\t0\t1\t1\n1\t2\t2\t2\n", out.String())

	assert.Error(t, runBin(nil, strings.NewReader(""), &out))
}

func TestParseTensorRejectsFractionalInts(t *testing.T) {
	_, err := parseTensor([]string{"1.5"}, tensor.Shape{1}, tensor.Int32)
	assert.Error(t, err)

	raw, err := parseTensor([]string{"-7"}, tensor.Shape{1}, tensor.Int32)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), raw.AsInt32()[0])

	_, err = parseTensor([]string{"1"}, tensor.Shape{1}, tensor.Uint32)
	assert.ErrorIs(t, err, histogram.ErrUnsupportedType)
}
