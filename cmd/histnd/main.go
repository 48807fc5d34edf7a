// Package main provides the histnd CLI.
//
// Usage:
//
//	histnd version
//	histnd bin -layout layout.yaml [-weighted] < points.txt
//
// bin reads whitespace-separated numbers from stdin, one point per group of
// len(dims) coordinates (followed by its weight with -weighted), and prints
// one line per bin: multi-index, lower edges, count and cumulative sum.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/histnd/histogram"
	"github.com/born-ml/histnd/internal/config"
	"github.com/born-ml/histnd/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("histnd %s\n", version)
	case "bin":
		if err := runBin(os.Args[2:], os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "histnd: %v\n", err)
			os.Exit(1)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "histnd - N-dimensional histograms")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                              Show version")
	fmt.Fprintln(w, "  bin -layout FILE [-weighted] < DATA   Histogram points read from stdin")
}

func runBin(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("bin", flag.ContinueOnError)
	layoutPath := fs.String("layout", "", "YAML layout file")
	weighted := fs.Bool("weighted", false, "each point is followed by its weight")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *layoutPath == "" {
		return errors.New("bin: -layout is required")
	}

	cfg, err := config.Load(*layoutPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return bin(cfg, *weighted, stdin, stdout, logger)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// bin histograms the points read from r and writes the table to w.
func bin(cfg *config.Config, weighted bool, r io.Reader, w io.Writer, logger *zap.Logger) error {
	layout := cfg.Layout()
	sampleType, weightType := cfg.Types()

	tokens, err := readTokens(r)
	if err != nil {
		return err
	}
	stride := layout.NDim()
	if weighted {
		stride++
	}
	if len(tokens)%stride != 0 {
		return fmt.Errorf("read %d values, not a multiple of %d per point", len(tokens), stride)
	}
	nPoints := len(tokens) / stride
	logger.Debug("read points",
		zap.Int("points", nPoints),
		zap.Int("dims", layout.NDim()),
		zap.Stringer("sample_type", sampleType),
		zap.Bool("weighted", weighted))

	h, err := histogram.New(layout)
	if err != nil {
		return err
	}

	coords := make([]string, 0, nPoints*layout.NDim())
	var weightTokens []string
	for i := 0; i < nPoints; i++ {
		row := tokens[i*stride : (i+1)*stride]
		coords = append(coords, row[:layout.NDim()]...)
		if weighted {
			weightTokens = append(weightTokens, row[layout.NDim()])
		}
	}

	sample, err := parseTensor(coords, tensor.Shape{nPoints, layout.NDim()}, sampleType)
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}
	var weights *tensor.RawTensor
	if weighted {
		if weights, err = parseTensor(weightTokens, tensor.Shape{nPoints}, weightType); err != nil {
			return fmt.Errorf("weights: %w", err)
		}
	}

	opts := cfg.Options()
	if err := h.FillRaw(sample, weights, opts); err != nil {
		logger.Error("binning failed", zap.Stringer("status", histogram.StatusOf(err)), zap.Error(err))
		return err
	}
	if !weighted && opts.Flags&(histogram.FlagWeightMin|histogram.FlagWeightMax) != 0 {
		logger.Warn("weight filters ignored for unweighted input", zap.Stringer("flags", opts.Flags))
	}

	dropped := h.Dropped()
	logger.Info("binned points",
		zap.Uint64("included", h.Total()),
		zap.Uint64("dropped_range", dropped.Range),
		zap.Uint64("dropped_weight", dropped.Weight))

	return writeTable(w, h)
}

func readTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return tokens, nil
}

// parseTensor parses tokens into a tensor of the given dtype.
func parseTensor(tokens []string, shape tensor.Shape, dt tensor.DataType) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(shape, dt)
	if err != nil {
		return nil, err
	}

	switch dt {
	case tensor.Float64:
		dst := raw.AsFloat64()
		for i, tok := range tokens {
			if dst[i], err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, err
			}
		}
	case tensor.Float32:
		dst := raw.AsFloat32()
		for i, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, err
			}
			dst[i] = float32(v)
		}
	case tensor.Int32:
		dst := raw.AsInt32()
		for i, tok := range tokens {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, err
			}
			dst[i] = int32(v)
		}
	default:
		return nil, fmt.Errorf("%w: %s", histogram.ErrUnsupportedType, dt)
	}
	return raw, nil
}

// writeTable prints one tab-separated line per bin.
func writeTable(w io.Writer, h *histogram.Histogram) error {
	shape := h.Shape()
	edges := h.Edges()
	counts, cumul := h.Counts(), h.Cumul()

	bw := bufio.NewWriter(w)
	for off := range counts {
		idx := shape.Unravel(off)
		idxs := make([]string, len(idx))
		lows := make([]string, len(idx))
		for d, i := range idx {
			idxs[d] = strconv.Itoa(i)
			lows[d] = strconv.FormatFloat(edges[d][i], 'g', -1, 64)
		}
		fmt.Fprintf(bw, "%s\t%s\t%d\t%s\n",
			strings.Join(idxs, ","), strings.Join(lows, ","), counts[off],
			strconv.FormatFloat(cumul[off], 'g', -1, 64))
	}
	return bw.Flush()
}
