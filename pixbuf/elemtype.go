package pixbuf

// ElementType is the storage type of a single channel value.
type ElementType uint8

const (
	// Uint8 stores each channel as an unsigned 8-bit integer.
	Uint8 ElementType = iota

	// Int32 stores each channel as a signed 32-bit integer.
	Int32

	// Float32 stores each channel as a 32-bit IEEE 754 float.
	Float32

	// elementTypeCount is the number of element types (for internal use).
	elementTypeCount
)

// elementSizes holds the byte size of each element type.
var elementSizes = [elementTypeCount]int{
	Uint8:   1,
	Int32:   4,
	Float32: 4,
}

// IsValid returns true if the element type is one of Uint8, Int32 or Float32.
func (t ElementType) IsValid() bool {
	return t < elementTypeCount
}

// Size returns the size of one element in bytes, or 0 for an invalid type.
func (t ElementType) Size() int {
	if !t.IsValid() {
		return 0
	}
	return elementSizes[t]
}

// String returns a string representation of the element type.
func (t ElementType) String() string {
	switch t {
	case Uint8:
		return "Uint8"
	case Int32:
		return "Int32"
	case Float32:
		return "Float32"
	default:
		return "Unknown"
	}
}

// PixelSize returns the number of bytes one pixel of the given layout occupies.
//
// Single-byte pixels stay one byte wide. Anything larger is rounded up to a
// multiple of 4 bytes, so a 3-channel Uint8 pixel occupies 4 bytes.
// Returns 0 for an invalid type or a non-positive channel count.
func PixelSize(t ElementType, channels int) int {
	size := t.Size()
	if size == 0 || channels <= 0 {
		return 0
	}
	n := size * channels
	if n == 1 {
		return 1
	}
	return (n + 3) &^ 3
}
