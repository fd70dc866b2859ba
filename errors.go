package resample

import (
	"errors"

	"github.com/gogpu/resample/pixbuf"
)

// Errors returned by Resample and Resampler.Apply.
var (
	// ErrInvalidDimension is returned when a target width or height is not
	// positive. It is the same value as pixbuf.ErrInvalidDimensions.
	ErrInvalidDimension = pixbuf.ErrInvalidDimensions

	// ErrUnsupportedElementType is returned when the source element type has
	// no computation path. It is the same value as
	// pixbuf.ErrUnsupportedElementType.
	ErrUnsupportedElementType = pixbuf.ErrUnsupportedElementType

	// ErrNilBuffer is returned when the source buffer is nil.
	ErrNilBuffer = errors.New("resample: nil source buffer")

	// ErrUnknownFilter is returned for a Filter value outside the enumeration
	// or a filter name that does not parse.
	ErrUnknownFilter = errors.New("resample: unknown filter")

	// ErrModeUnsupported is returned when the filter cannot be applied to the
	// source mode (palette and bilevel images only support Nearest).
	ErrModeUnsupported = errors.New("resample: filter not supported for image mode")

	// ErrInvalidBox is returned when a source region is negative, empty or
	// extends past the source image.
	ErrInvalidBox = errors.New("resample: invalid source box")
)
