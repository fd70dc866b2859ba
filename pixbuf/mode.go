package pixbuf

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Mode is a named pixel layout.
//
// Modes describe how a buffer's channels should be interpreted. The resampler
// itself only looks at the element type and channel count, except for the
// palette and bilevel modes which can only be point sampled.
type Mode uint8

const (
	// ModeNone marks a buffer created from a raw (type, channels) layout.
	ModeNone Mode = iota

	// Mode1 is bilevel, stored as one byte per pixel (0 or 255).
	Mode1

	// ModeL is 8-bit luminance.
	ModeL

	// ModeP is 8-bit palette indices.
	ModeP

	// ModeI is 32-bit signed integer, single band.
	ModeI

	// ModeF is 32-bit float, single band.
	ModeF

	// ModeRGB is 3x8-bit color, padded to 4 bytes per pixel.
	ModeRGB

	// ModeRGBA is 4x8-bit color with straight alpha.
	ModeRGBA

	// ModeCMYK is 4x8-bit color separation.
	ModeCMYK

	// ModeYCbCr is 3x8-bit video color, padded to 4 bytes per pixel.
	ModeYCbCr

	// ModeLAB is 3x8-bit L*a*b color, padded to 4 bytes per pixel.
	ModeLAB

	// modeCount is the number of modes (for internal use).
	modeCount
)

// ModeInfo contains metadata about a mode.
type ModeInfo struct {
	// Name is the conventional mode name ("L", "RGBA", ...).
	Name string

	// ElementType is the channel storage type.
	ElementType ElementType

	// Channels is the number of meaningful channels per pixel.
	Channels int

	// PointSampledOnly is set for modes whose values are not intensities
	// (palette indices, bilevel) and therefore cannot be filtered.
	PointSampledOnly bool
}

// modeInfoTable contains metadata for each mode.
var modeInfoTable = [modeCount]ModeInfo{
	ModeNone:  {Name: ""},
	Mode1:     {Name: "1", ElementType: Uint8, Channels: 1, PointSampledOnly: true},
	ModeL:     {Name: "L", ElementType: Uint8, Channels: 1},
	ModeP:     {Name: "P", ElementType: Uint8, Channels: 1, PointSampledOnly: true},
	ModeI:     {Name: "I", ElementType: Int32, Channels: 1},
	ModeF:     {Name: "F", ElementType: Float32, Channels: 1},
	ModeRGB:   {Name: "RGB", ElementType: Uint8, Channels: 3},
	ModeRGBA:  {Name: "RGBA", ElementType: Uint8, Channels: 4},
	ModeCMYK:  {Name: "CMYK", ElementType: Uint8, Channels: 4},
	ModeYCbCr: {Name: "YCbCr", ElementType: Uint8, Channels: 3},
	ModeLAB:   {Name: "LAB", ElementType: Uint8, Channels: 3},
}

// Info returns the ModeInfo for this mode.
func (m Mode) Info() ModeInfo {
	if m >= modeCount {
		return ModeInfo{}
	}
	return modeInfoTable[m]
}

// IsValid returns true if the mode is a known named mode.
// ModeNone is not a valid mode for NewMode.
func (m Mode) IsValid() bool {
	return m > ModeNone && m < modeCount
}

// ElementType returns the channel storage type of the mode.
func (m Mode) ElementType() ElementType {
	return m.Info().ElementType
}

// Channels returns the number of channels of the mode.
func (m Mode) Channels() int {
	return m.Info().Channels
}

// PixelSize returns the number of bytes per pixel of the mode.
func (m Mode) PixelSize() int {
	if !m.IsValid() {
		return 0
	}
	info := m.Info()
	return PixelSize(info.ElementType, info.Channels)
}

// PointSampledOnly reports whether the mode only supports nearest-neighbor sampling.
func (m Mode) PointSampledOnly() bool {
	return m.Info().PointSampledOnly
}

// String returns the conventional mode name, or "Unknown".
func (m Mode) String() string {
	switch {
	case m == ModeNone:
		return "None"
	case m.IsValid():
		return m.Info().Name
	default:
		return "Unknown"
	}
}

// ParseMode returns the mode with the given name. Matching ignores case,
// so "rgba" and "RGBA" both select ModeRGBA.
func ParseMode(name string) (Mode, error) {
	fold := cases.Fold()
	key := fold.String(name)
	for m := Mode1; m < modeCount; m++ {
		if fold.String(modeInfoTable[m].Name) == key {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}
