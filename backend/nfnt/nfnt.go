// Package nfnt provides a resize backend using github.com/nfnt/resize.
package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

// Name is the backend identifier.
const Name = "nfnt"

func init() {
	backend.Register(Name, func() backend.Resizer {
		return &Resizer{}
	})
}

// Resizer uses "github.com/nfnt/resize".
type Resizer struct{}

var _ backend.Resizer = (*Resizer)(nil)

// Name returns the backend identifier.
func (r *Resizer) Name() string {
	return Name
}

// Resize implements backend.Resizer.
func (r *Resizer) Resize(img image.Image, width, height int, f resample.Filter) (image.Image, error) {
	if err := backend.Validate(img, width, height, f); err != nil {
		return nil, err
	}
	return resize.Resize(uint(width), uint(height), img, interpolation(f)), nil
}

// interpolation maps f onto the closest nfnt function. nfnt has no box or
// Hamming filter.
func interpolation(f resample.Filter) resize.InterpolationFunction {
	switch f {
	case resample.Nearest:
		return resize.NearestNeighbor
	case resample.Box, resample.Bilinear, resample.Hamming:
		return resize.Bilinear
	case resample.Bicubic:
		return resize.Bicubic
	default:
		return resize.Lanczos3
	}
}
