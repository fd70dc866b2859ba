// Package rez provides a resize backend using github.com/bamiaux/rez.
//
// rez converts between images of the same concrete type, so the source is
// first drawn into an RGBA image.
package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

// Name is the backend identifier.
const Name = "rez"

func init() {
	backend.Register(Name, func() backend.Resizer {
		return &Resizer{}
	})
}

// Resizer uses "github.com/bamiaux/rez".
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
	src, ok := img.(*image.RGBA)
	if !ok || src.Rect.Min != (image.Point{}) {
		b := img.Bounds()
		src = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := rez.Convert(m, src, filter(f)); err != nil {
		return nil, err
	}
	return m, nil
}

// filter maps f onto the closest rez filter. rez has no nearest, box or
// Hamming filter; those use bilinear.
func filter(f resample.Filter) rez.Filter {
	switch f {
	case resample.Bicubic:
		return rez.NewBicubicFilter()
	case resample.Lanczos:
		return rez.NewLanczosFilter(3)
	default:
		return rez.NewBilinearFilter()
	}
}
