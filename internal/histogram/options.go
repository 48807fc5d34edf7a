package histogram

import (
	"strings"

	"github.com/born-ml/histnd/internal/tensor"
)

// Flags is the bitset form of the per-call options, as exchanged with array
// layers that pass options as an integer.
type Flags int

// Option bits.
const (
	FlagNone          Flags = 0
	FlagWeightMin     Flags = 1
	FlagWeightMax     Flags = 1 << 1
	FlagLastBinClosed Flags = 1 << 2
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String returns the set flags joined by "|", or "none".
func (f Flags) String() string {
	var parts []string
	if f.Has(FlagWeightMin) {
		parts = append(parts, "weight_min")
	}
	if f.Has(FlagWeightMax) {
		parts = append(parts, "weight_max")
	}
	if f.Has(FlagLastBinClosed) {
		parts = append(parts, "last_bin_closed")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Options configures one kernel call. W is the weight element type;
// thresholds are compared against weights in that type.
//
// The zero value bins half-open on every edge and applies no weight filter.
type Options[W tensor.Number] struct {
	// LastBinClosed makes the upper range edge of every dimension inclusive,
	// so samples equal to the maximum land in the last bin instead of being dropped.
	LastBinClosed bool

	// FilterWeightMin drops samples whose weight is below WeightMin.
	FilterWeightMin bool
	WeightMin       W

	// FilterWeightMax drops samples whose weight is above WeightMax.
	FilterWeightMax bool
	WeightMax       W
}

// OptionsFromFlags converts a flag bitset and thresholds into Options.
func OptionsFromFlags[W tensor.Number](f Flags, weightMin, weightMax W) Options[W] {
	return Options[W]{
		LastBinClosed:   f.Has(FlagLastBinClosed),
		FilterWeightMin: f.Has(FlagWeightMin),
		WeightMin:       weightMin,
		FilterWeightMax: f.Has(FlagWeightMax),
		WeightMax:       weightMax,
	}
}

// Flags returns the bitset form of o.
func (o Options[W]) Flags() Flags {
	f := FlagNone
	if o.FilterWeightMin {
		f |= FlagWeightMin
	}
	if o.FilterWeightMax {
		f |= FlagWeightMax
	}
	if o.LastBinClosed {
		f |= FlagLastBinClosed
	}
	return f
}

// Output holds the caller-owned result buffers.
//
// Histo and Cumul must both have Layout.Size() elements. The kernel adds into
// them and never clears them, so callers zero them once and may then reuse
// them across calls to build a running histogram over successive chunks.
type Output struct {
	Histo []uint32
	Cumul []float64

	// Dropped, when non-nil, is incremented with the number of excluded samples.
	Dropped *Dropped
}

// Dropped counts samples excluded by filtering. Exclusion is not an error.
type Dropped struct {
	Range  uint64 // outside the layout in at least one dimension (or NaN)
	Weight uint64 // rejected by a weight threshold
}

// Total returns the number of excluded samples.
func (d Dropped) Total() uint64 {
	return d.Range + d.Weight
}

func (d *Dropped) add(other Dropped) {
	d.Range += other.Range
	d.Weight += other.Weight
}
