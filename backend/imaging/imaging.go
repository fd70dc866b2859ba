// Package imaging provides a resize backend using
// github.com/disintegration/imaging.
//
// imaging accepts custom filters, so the resample kernels are passed
// through unchanged.
package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

// Name is the backend identifier.
const Name = "imaging"

func init() {
	backend.Register(Name, func() backend.Resizer {
		return &Resizer{}
	})
}

// Resizer uses "github.com/disintegration/imaging".
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
	return imaging.Resize(img, width, height, Filter(f)), nil
}

// Filter returns the imaging filter for f.
func Filter(f resample.Filter) imaging.ResampleFilter {
	if f == resample.Nearest {
		return imaging.NearestNeighbor
	}
	return imaging.ResampleFilter{Support: f.Radius(), Kernel: f.Kernel}
}
