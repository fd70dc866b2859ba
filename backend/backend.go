package backend

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/resample"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrEmptyImage is returned when the source image has no pixels.
	ErrEmptyImage = errors.New("backend: empty source image")
)

// Resizer is the interface for resize backends.
// It abstracts the resampling implementation so that the native engine can
// be compared against other Go imaging libraries on the same inputs.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Resizer interface {
	// Name returns the backend identifier (e.g., "native", "xdraw").
	Name() string

	// Resize returns img scaled to width×height. Backends without an exact
	// equivalent of f use their closest filter.
	Resize(img image.Image, width, height int, f resample.Filter) (image.Image, error)
}

// Validate performs the checks shared by every backend: positive target
// dimensions, a known filter and a non-empty source.
func Validate(img image.Image, width, height int, f resample.Filter) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("backend: target size %dx%d: %w", width, height, resample.ErrInvalidDimension)
	}
	if !f.IsValid() {
		return fmt.Errorf("backend: %w: %d", resample.ErrUnknownFilter, uint8(f))
	}
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	return nil
}
