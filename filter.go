package resample

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Filter selects the reconstruction kernel used when resampling.
type Filter uint8

const (
	// Nearest copies the source pixel under each output pixel center.
	Nearest Filter = iota

	// Box averages the source pixels covered by each output pixel.
	Box

	// Bilinear uses a triangle kernel of radius 1.
	Bilinear

	// Hamming uses a Hamming-windowed sinc of radius 1. It is sharper than
	// Bilinear at the same cost.
	Hamming

	// Bicubic uses the cubic convolution kernel with a = -0.5.
	Bicubic

	// Lanczos uses a 3-lobed Lanczos windowed sinc.
	Lanczos

	// filterCount is used for validation.
	filterCount
)

// filterInfo describes one filter.
type filterInfo struct {
	name   string
	radius float64
	kernel func(x float64) float64
}

var filterTable = [filterCount]filterInfo{
	Nearest:  {"Nearest", 0.5, boxKernel},
	Box:      {"Box", 0.5, boxKernel},
	Bilinear: {"Bilinear", 1, bilinearKernel},
	Hamming:  {"Hamming", 1, hammingKernel},
	Bicubic:  {"Bicubic", 2, bicubicKernel},
	Lanczos:  {"Lanczos", 3, lanczosKernel},
}

// IsValid reports whether f is one of the defined filters.
func (f Filter) IsValid() bool {
	return f < filterCount
}

// Radius returns the kernel support radius in source pixels at scale 1.
// Returns 0 for invalid filters.
func (f Filter) Radius() float64 {
	if !f.IsValid() {
		return 0
	}
	return filterTable[f].radius
}

// Kernel evaluates the filter's kernel at distance x, measured in source
// pixels at scale 1. Weights outside the support radius are 0.
func (f Filter) Kernel(x float64) float64 {
	if !f.IsValid() {
		return 0
	}
	return filterTable[f].kernel(x)
}

// String returns the name of the filter.
func (f Filter) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return filterTable[f].name
}

// Set parses a filter name, so that *Filter satisfies pflag.Value and
// flag.Value.
func (f *Filter) Set(s string) error {
	v, err := ParseFilter(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type returns the flag type name.
func (f *Filter) Type() string {
	return "filter"
}

// filterAliases maps Pillow's alternative names onto filters.
var filterAliases = map[string]Filter{
	"linear":    Bilinear,
	"triangle":  Bilinear,
	"cubic":     Bicubic,
	"antialias": Lanczos,
}

// ParseFilter returns the filter with the given name. Matching ignores
// case, so "lanczos", "Lanczos" and "LANCZOS" are equivalent. Pillow's
// aliases (linear, cubic, antialias) are accepted too.
func ParseFilter(name string) (Filter, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for f := Filter(0); f < filterCount; f++ {
		if cases.Fold().String(filterTable[f].name) == folded {
			return f, nil
		}
	}
	if f, ok := filterAliases[folded]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Filters returns all filters in enumeration order.
func Filters() []Filter {
	out := make([]Filter, 0, filterCount)
	for f := Filter(0); f < filterCount; f++ {
		out = append(out, f)
	}
	return out
}

// boxKernel is 1 on (-0.5, 0.5].
func boxKernel(x float64) float64 {
	if x > -0.5 && x <= 0.5 {
		return 1
	}
	return 0
}

func bilinearKernel(x float64) float64 {
	x = math.Abs(x)
	if x < 1 {
		return 1 - x
	}
	return 0
}

func hammingKernel(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x == 0:
		return 1
	case x >= 1:
		return 0
	}
	x *= math.Pi
	return math.Sin(x) / x * (0.54 + 0.46*math.Cos(x))
}

// bicubicA is the cubic convolution parameter.
const bicubicA = -0.5

func bicubicKernel(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return ((bicubicA+2)*x-(bicubicA+3))*x*x + 1
	case x < 2:
		return (((x-5)*x+8)*x - 4) * bicubicA
	}
	return 0
}

func lanczosKernel(x float64) float64 {
	if x >= -3 && x < 3 {
		return sinc(x) * sinc(x/3)
	}
	return 0
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}
