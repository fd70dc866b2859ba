package resample

import (
	"errors"
	"math"
	"testing"
)

func TestFilterRadius(t *testing.T) {
	tests := []struct {
		f    Filter
		want float64
	}{
		{Nearest, 0.5},
		{Box, 0.5},
		{Bilinear, 1},
		{Hamming, 1},
		{Bicubic, 2},
		{Lanczos, 3},
		{filterCount, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Radius(); got != tt.want {
			t.Errorf("%v.Radius() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestKernelValues(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		x    float64
		want float64
	}{
		{"box center", Box, 0, 1},
		{"box right edge included", Box, 0.5, 1},
		{"box left edge excluded", Box, -0.5, 0},
		{"bilinear center", Bilinear, 0, 1},
		{"bilinear half", Bilinear, -0.5, 0.5},
		{"bilinear edge", Bilinear, 1, 0},
		{"hamming center", Hamming, 0, 1},
		{"hamming edge", Hamming, 1, 0},
		{"bicubic center", Bicubic, 0, 1},
		{"bicubic one", Bicubic, 1, 0},
		{"bicubic half", Bicubic, 0.5, 0.5625},
		{"bicubic lobe", Bicubic, 1.5, -0.0625},
		{"bicubic edge", Bicubic, 2, 0},
		{"lanczos center", Lanczos, 0, 1},
		{"lanczos integer", Lanczos, 2, 0},
		{"lanczos edge", Lanczos, 3, 0},
		{"invalid filter", filterCount, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f.Kernel(tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%v.Kernel(%v) = %v, want %v", tt.f, tt.x, got, tt.want)
			}
		})
	}
}

func TestKernelSymmetric(t *testing.T) {
	for _, f := range []Filter{Bilinear, Hamming, Bicubic, Lanczos} {
		for x := 0.05; x < f.Radius(); x += 0.1 {
			if a, b := f.Kernel(x), f.Kernel(-x); math.Abs(a-b) > 1e-12 {
				t.Errorf("%v.Kernel(%v) = %v, Kernel(-x) = %v", f, x, a, b)
			}
		}
	}
}

func TestKernelZeroOutsideSupport(t *testing.T) {
	for _, f := range Filters() {
		r := f.Radius()
		for _, x := range []float64{r + 0.01, r + 1, -(r + 0.01), 100} {
			if got := f.Kernel(x); got != 0 {
				t.Errorf("%v.Kernel(%v) = %v, want 0", f, x, got)
			}
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr error
	}{
		{"nearest", Nearest, nil},
		{"BOX", Box, nil},
		{"Bilinear", Bilinear, nil},
		{"hamming", Hamming, nil},
		{" bicubic ", Bicubic, nil},
		{"LANCZOS", Lanczos, nil},
		{"linear", Bilinear, nil},
		{"cubic", Bicubic, nil},
		{"antialias", Lanczos, nil},
		{"gaussian", 0, ErrUnknownFilter},
		{"", 0, ErrUnknownFilter},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseFilter(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFilter(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterStringRoundTrip(t *testing.T) {
	fs := Filters()
	if len(fs) != int(filterCount) {
		t.Fatalf("Filters() returned %d filters, want %d", len(fs), filterCount)
	}
	for _, f := range fs {
		got, err := ParseFilter(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFilter(%q) = %v, %v", f.String(), got, err)
		}
	}
	if s := Filter(42).String(); s != "Unknown" {
		t.Errorf("Filter(42).String() = %q, want Unknown", s)
	}
}

func TestFilterSet(t *testing.T) {
	var f Filter
	if err := f.Set("lanczos"); err != nil || f != Lanczos {
		t.Errorf("Set(lanczos) = %v, filter %v", err, f)
	}
	if err := f.Set("nope"); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("Set(nope) error = %v, want ErrUnknownFilter", err)
	}
	if f != Lanczos {
		t.Errorf("failed Set changed the filter to %v", f)
	}
	if f.Type() != "filter" {
		t.Errorf("Type() = %q", f.Type())
	}
}
