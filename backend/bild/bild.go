// Package bild provides a resize backend using
// github.com/anthonynsimon/bild/transform.
package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

// Name is the backend identifier.
const Name = "bild"

func init() {
	backend.Register(Name, func() backend.Resizer {
		return &Resizer{}
	})
}

// Resizer uses "github.com/anthonynsimon/bild/transform".
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
	return transform.Resize(img, width, height, filter(f)), nil
}

// filter maps f onto the closest bild filter. bild has no Hamming filter
// and its cubic is Catmull-Rom (a = -0.5), which matches Bicubic.
func filter(f resample.Filter) transform.ResampleFilter {
	switch f {
	case resample.Nearest:
		return transform.NearestNeighbor
	case resample.Box:
		return transform.Box
	case resample.Bilinear, resample.Hamming:
		return transform.Linear
	case resample.Bicubic:
		return transform.CatmullRom
	default:
		return transform.Lanczos
	}
}
