// Package gift provides a resize backend using
// github.com/disintegration/gift.
package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

// Name is the backend identifier.
const Name = "gift"

func init() {
	backend.Register(Name, func() backend.Resizer {
		return &Resizer{Parallel: true}
	})
}

// Resizer uses "github.com/disintegration/gift".
type Resizer struct {
	// Parallel lets gift split the work across goroutines.
	Parallel bool
}

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
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	gift.Resize(width, height, resampling(f)).Draw(m, img, &gift.Options{Parallelization: r.Parallel})
	return m, nil
}

// resampling maps f onto the closest gift resampling. gift has no Hamming
// filter.
func resampling(f resample.Filter) gift.Resampling {
	switch f {
	case resample.Nearest:
		return gift.NearestNeighborResampling
	case resample.Box:
		return gift.BoxResampling
	case resample.Bilinear, resample.Hamming:
		return gift.LinearResampling
	case resample.Bicubic:
		return gift.CubicResampling
	default:
		return gift.LanczosResampling
	}
}
