// Package config loads the binning layout used by the histnd command.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/histnd/internal/histogram"
	"github.com/born-ml/histnd/internal/tensor"
)

// Config is the YAML layout document.
//
//	sample_type: float32
//	weight_type: int32
//	last_bin_closed: true
//	weight_min: 1
//	dims:
//	  - {min: 0, max: 10, bins: 5}
//	  - {min: -1, max: 1, bins: 4}
type Config struct {
	Dims          []DimConfig `yaml:"dims"`
	SampleType    string      `yaml:"sample_type"`
	WeightType    string      `yaml:"weight_type"`
	LastBinClosed bool        `yaml:"last_bin_closed"`
	WeightMin     *float64    `yaml:"weight_min"` // filter disabled when unset
	WeightMax     *float64    `yaml:"weight_max"` // filter disabled when unset
	LogLevel      string      `yaml:"log_level"`
}

// DimConfig is the range and bin count of one dimension.
type DimConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Bins int     `yaml:"bins"`
}

// Load reads and parses the layout file at path, then applies environment
// overrides. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a layout document, fills defaults, applies environment
// overrides and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SampleType == "" {
		c.SampleType = "float64"
	}
	if c.WeightType == "" {
		c.WeightType = "float64"
	}
	c.LogLevel = getenv("HISTND_LOG_LEVEL", c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports every problem in the document at once.
func (c *Config) Validate() error {
	var errs error
	if len(c.Dims) == 0 {
		errs = multierr.Append(errs, errors.New("dims must list at least one dimension"))
	} else {
		errs = multierr.Append(errs, c.Layout().Validate())
	}
	if _, err := c.inputType(c.SampleType); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("sample_type: %w", err))
	}
	if _, err := c.inputType(c.WeightType); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("weight_type: %w", err))
	}
	if c.WeightMin != nil && c.WeightMax != nil && *c.WeightMin > *c.WeightMax {
		errs = multierr.Append(errs, fmt.Errorf("weight_min %v is greater than weight_max %v", *c.WeightMin, *c.WeightMax))
	}
	return errs
}

func (c *Config) inputType(name string) (tensor.DataType, error) {
	dt, err := tensor.ParseDataType(name)
	if err != nil {
		return 0, err
	}
	if !dt.IsInput() {
		return 0, fmt.Errorf("%s cannot hold samples or weights", dt)
	}
	return dt, nil
}

// Layout returns the binning layout.
func (c *Config) Layout() histogram.Layout {
	layout := histogram.Layout{
		Ranges: make([]float64, 0, 2*len(c.Dims)),
		Bins:   make([]int, 0, len(c.Dims)),
	}
	for _, d := range c.Dims {
		layout.Ranges = append(layout.Ranges, d.Min, d.Max)
		layout.Bins = append(layout.Bins, d.Bins)
	}
	return layout
}

// Types returns the sample and weight element types. Only valid after Validate.
func (c *Config) Types() (sample, weight tensor.DataType) {
	sample, _ = c.inputType(c.SampleType)
	weight, _ = c.inputType(c.WeightType)
	return sample, weight
}

// Options returns the kernel options.
func (c *Config) Options() histogram.RawOptions {
	opts := histogram.RawOptions{}
	if c.LastBinClosed {
		opts.Flags |= histogram.FlagLastBinClosed
	}
	if c.WeightMin != nil {
		opts.Flags |= histogram.FlagWeightMin
		opts.WeightMin = *c.WeightMin
	}
	if c.WeightMax != nil {
		opts.Flags |= histogram.FlagWeightMax
		opts.WeightMax = *c.WeightMax
	}
	return opts
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
