// Package xdraw provides a resize backend using golang.org/x/image/draw.
//
// Convolution filters run through draw.Kernel with the resample kernels,
// so the weights match the native backend; x/image/draw differs in working
// on premultiplied 16-bit color and in its edge handling.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

func init() {
	backend.Register(backend.BackendXDraw, func() backend.Resizer {
		return &Resizer{}
	})
}

// Resizer uses "golang.org/x/image/draw".
type Resizer struct{}

var _ backend.Resizer = (*Resizer)(nil)

// Name returns the backend identifier.
func (r *Resizer) Name() string {
	return backend.BackendXDraw
}

// Resize implements backend.Resizer.
func (r *Resizer) Resize(img image.Image, width, height int, f resample.Filter) (image.Image, error) {
	if err := backend.Validate(img, width, height, f); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	Interpolator(f).Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// Interpolator returns the x/image/draw interpolator equivalent to f.
func Interpolator(f resample.Filter) draw.Interpolator {
	if f == resample.Nearest {
		return draw.NearestNeighbor
	}
	return &draw.Kernel{Support: f.Radius(), At: f.Kernel}
}
