// Package pixbuf provides the owned pixel buffer consumed and produced by
// the resampler.
//
// A Buffer is a 2D raster of pixels stored row by row. Every channel value
// has one of three element types (Uint8, Int32, Float32) and every pixel
// occupies the same number of bytes, which may include alignment padding
// (a 3-channel Uint8 pixel occupies 4 bytes). Rows may carry additional
// padding through an explicit stride.
//
// Storage is typed: a buffer owns exactly one of a []uint8, []int32 or
// []float32 backing slice, so integer and float data never share memory.
// Raw byte views are derived from the typed storage.
package pixbuf

import (
	"errors"
	"math"
	"unsafe"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrUnsupportedElementType is returned when an element type is not one of
	// Uint8, Int32 or Float32, or an operation does not support the buffer's type.
	ErrUnsupportedElementType = errors.New("pixbuf: unsupported element type")

	// ErrInvalidChannels is returned when the channel count is outside [1, 4].
	ErrInvalidChannels = errors.New("pixbuf: invalid channel count")

	// ErrInvalidStride is returned when the stride cannot hold a row or is not
	// a multiple of the element size.
	ErrInvalidStride = errors.New("pixbuf: invalid stride")

	// ErrBufferTooSmall is returned when a caller-supplied buffer is smaller
	// than the data to be written into it.
	ErrBufferTooSmall = errors.New("pixbuf: buffer too small")

	// ErrOutOfRange is returned when a row, pixel or channel index is outside
	// the buffer.
	ErrOutOfRange = errors.New("pixbuf: index out of range")

	// ErrUnsupportedMode is returned when a mode is unknown or cannot be
	// converted.
	ErrUnsupportedMode = errors.New("pixbuf: unsupported mode")
)

// MaxChannels is the largest channel count a buffer can hold.
const MaxChannels = 4

// Buffer is an owned 2D pixel raster.
//
// Thread safety: Buffer is safe for concurrent read access. Concurrent writes
// are safe only to disjoint rows.
type Buffer struct {
	width     int
	height    int
	elem      ElementType
	channels  int
	pixelSize int // bytes per pixel, including padding
	stride    int // bytes per row, including padding
	mode      Mode

	// Exactly one of these is non-nil, selected by elem.
	u8  []uint8
	i32 []int32
	f32 []float32

	pool *Pool // owner pool, nil for unpooled buffers
	idle bool  // held by pool, guarded by pool.mu
}

// New creates a zeroed buffer with the given dimensions and raw layout.
func New(width, height int, elem ElementType, channels int) (*Buffer, error) {
	if err := checkLayout(width, height, elem, channels); err != nil {
		return nil, err
	}
	return newBuffer(width, height, elem, channels, ModeNone, width*PixelSize(elem, channels)), nil
}

// NewWithStride creates a zeroed buffer with a custom row stride in bytes.
// Stride must be at least width*PixelSize(elem, channels) and a multiple of
// the element size.
func NewWithStride(width, height int, elem ElementType, channels, stride int) (*Buffer, error) {
	if err := checkLayout(width, height, elem, channels); err != nil {
		return nil, err
	}
	if stride < width*PixelSize(elem, channels) || stride%elem.Size() != 0 {
		return nil, ErrInvalidStride
	}
	return newBuffer(width, height, elem, channels, ModeNone, stride), nil
}

// NewMode creates a zeroed buffer laid out for the given mode.
func NewMode(mode Mode, width, height int) (*Buffer, error) {
	if !mode.IsValid() {
		return nil, ErrUnsupportedMode
	}
	info := mode.Info()
	if err := checkLayout(width, height, info.ElementType, info.Channels); err != nil {
		return nil, err
	}
	return newBuffer(width, height, info.ElementType, info.Channels, mode, width*mode.PixelSize()), nil
}

// checkLayout validates dimensions, element type and channel count.
func checkLayout(width, height int, elem ElementType, channels int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !elem.IsValid() {
		return ErrUnsupportedElementType
	}
	if channels <= 0 || channels > MaxChannels {
		return ErrInvalidChannels
	}
	return nil
}

// newBuffer allocates storage for an already validated layout.
func newBuffer(width, height int, elem ElementType, channels int, mode Mode, stride int) *Buffer {
	b := &Buffer{
		width:     width,
		height:    height,
		elem:      elem,
		channels:  channels,
		pixelSize: PixelSize(elem, channels),
		stride:    stride,
		mode:      mode,
	}
	n := stride * height / elem.Size()
	switch elem {
	case Uint8:
		b.u8 = make([]uint8, n)
	case Int32:
		b.i32 = make([]int32, n)
	case Float32:
		b.f32 = make([]float32, n)
	}
	return b
}

// NewLike creates a zeroed buffer with the same element type, channel count
// and mode as b but different dimensions. The stride is not carried over.
func NewLike(b *Buffer, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newBuffer(width, height, b.elem, b.channels, b.mode, width*b.pixelSize), nil
}

// Clone creates a deep copy of the buffer. The copy is never pooled.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.pool = nil
	c.idle = false
	c.u8 = cloneSlice(b.u8)
	c.i32 = cloneSlice(b.i32)
	c.f32 = cloneSlice(b.f32)
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// ElementType returns the channel storage type.
func (b *Buffer) ElementType() ElementType {
	return b.elem
}

// Channels returns the number of channels per pixel.
func (b *Buffer) Channels() int {
	return b.channels
}

// PixelSize returns the number of bytes per pixel, including padding.
func (b *Buffer) PixelSize() int {
	return b.pixelSize
}

// PixelElements returns the number of elements per pixel, including padding.
func (b *Buffer) PixelElements() int {
	return b.pixelSize / b.elem.Size()
}

// Stride returns the number of bytes per row, including padding.
func (b *Buffer) Stride() int {
	return b.stride
}

// Mode returns the buffer's mode, or ModeNone for raw layouts.
func (b *Buffer) Mode() Mode {
	return b.mode
}

// ByteSize returns the total size of the pixel storage in bytes.
func (b *Buffer) ByteSize() int {
	return b.stride * b.height
}

// released reports whether the storage has been dropped by Release.
func (b *Buffer) released() bool {
	return b.u8 == nil && b.i32 == nil && b.f32 == nil
}

// bytes returns the whole storage as raw bytes in native byte order.
func (b *Buffer) bytes() []byte {
	switch b.elem {
	case Uint8:
		return b.u8
	case Int32:
		if len(b.i32) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.i32))), len(b.i32)*4)
	case Float32:
		if len(b.f32) == 0 {
			return nil
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.f32))), len(b.f32)*4)
	}
	return nil
}

// Row returns the raw bytes of row y, excluding row padding.
// Writes through the returned slice modify the buffer.
// Returns ErrOutOfRange if y is outside [0, Height()).
func (b *Buffer) Row(y int) ([]byte, error) {
	if y < 0 || y >= b.height {
		return nil, ErrOutOfRange
	}
	data := b.bytes()
	if data == nil {
		return nil, ErrOutOfRange
	}
	start := y * b.stride
	return data[start : start+b.width*b.pixelSize], nil
}

// RowUint8 returns row y as Uint8 elements (PixelElements() per pixel).
// The view is unavailable (ok == false) when the buffer does not store Uint8
// or y is outside the buffer.
func (b *Buffer) RowUint8(y int) ([]uint8, bool) {
	if b.elem != Uint8 || y < 0 || y >= b.height || b.u8 == nil {
		return nil, false
	}
	start := y * b.stride
	return b.u8[start : start+b.width*b.pixelSize], true
}

// RowInt32 returns row y as Int32 elements (PixelElements() per pixel).
// The view is unavailable (ok == false) when the buffer does not store Int32
// or y is outside the buffer.
func (b *Buffer) RowInt32(y int) ([]int32, bool) {
	if b.elem != Int32 || y < 0 || y >= b.height || b.i32 == nil {
		return nil, false
	}
	start := y * (b.stride / 4)
	return b.i32[start : start+b.width*b.pixelSize/4], true
}

// RowFloat32 returns row y as Float32 elements (PixelElements() per pixel).
// The view is unavailable (ok == false) when the buffer does not store
// Float32 or y is outside the buffer.
func (b *Buffer) RowFloat32(y int) ([]float32, bool) {
	if b.elem != Float32 || y < 0 || y >= b.height || b.f32 == nil {
		return nil, false
	}
	start := y * (b.stride / 4)
	return b.f32[start : start+b.width*b.pixelSize/4], true
}

// Pixel returns the raw bytes of pixel (x, y), including padding.
// Returns ErrOutOfRange if the coordinates are outside the buffer.
func (b *Buffer) Pixel(x, y int) ([]byte, error) {
	if x < 0 || x >= b.width {
		return nil, ErrOutOfRange
	}
	row, err := b.Row(y)
	if err != nil {
		return nil, err
	}
	off := x * b.pixelSize
	return row[off : off+b.pixelSize], nil
}

// elemIndex returns the storage index of channel c of pixel (x, y).
func (b *Buffer) elemIndex(x, y, c int) (int, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || c < 0 || c >= b.channels || b.released() {
		return 0, ErrOutOfRange
	}
	size := b.elem.Size()
	return (y*b.stride + x*b.pixelSize + c*size) / size, nil
}

// At returns channel c of pixel (x, y) as a float64.
func (b *Buffer) At(x, y, c int) (float64, error) {
	i, err := b.elemIndex(x, y, c)
	if err != nil {
		return 0, err
	}
	switch b.elem {
	case Uint8:
		return float64(b.u8[i]), nil
	case Int32:
		return float64(b.i32[i]), nil
	case Float32:
		return float64(b.f32[i]), nil
	}
	return 0, ErrUnsupportedElementType
}

// SetAt sets channel c of pixel (x, y).
// Uint8 values are rounded half up and Int32 values half to even, then
// clamped to the type's range. Float32 values are stored as is.
func (b *Buffer) SetAt(x, y, c int, v float64) error {
	i, err := b.elemIndex(x, y, c)
	if err != nil {
		return err
	}
	switch b.elem {
	case Uint8:
		b.u8[i] = ClampUint8(v)
	case Int32:
		b.i32[i] = ClampInt32(v)
	case Float32:
		b.f32[i] = float32(v)
	default:
		return ErrUnsupportedElementType
	}
	return nil
}

// Fill sets every pixel to the given channel values. Either one value (used
// for all channels) or exactly Channels() values must be given.
func (b *Buffer) Fill(values ...float64) error {
	if len(values) != 1 && len(values) != b.channels {
		return ErrInvalidChannels
	}
	for y := range b.height {
		for x := range b.width {
			for c := range b.channels {
				v := values[0]
				if len(values) > 1 {
					v = values[c]
				}
				if err := b.SetAt(x, y, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Clear sets all storage, including padding, to zero.
func (b *Buffer) Clear() {
	clear(b.u8)
	clear(b.i32)
	clear(b.f32)
}

// Equal reports whether b and other have the same dimensions, layout and
// channel values. Padding bytes and stride are ignored.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.width != other.width || b.height != other.height ||
		b.elem != other.elem || b.channels != other.channels {
		return false
	}
	for y := range b.height {
		for x := range b.width {
			for c := range b.channels {
				v1, _ := b.At(x, y, c)
				v2, _ := other.At(x, y, c)
				if v1 != v2 && !(math.IsNaN(v1) && math.IsNaN(v2)) {
					return false
				}
			}
		}
	}
	return true
}

// Release gives the buffer's storage back. Pooled buffers return to their
// pool; others drop their storage for the garbage collector. The buffer must
// not be used after Release.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	if p := b.pool; p != nil {
		p.Put(b)
		return
	}
	b.u8, b.i32, b.f32 = nil, nil, nil
}

// ClampUint8 rounds v half up and clamps it to [0, 255].
func ClampUint8(v float64) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

// ClampInt32 rounds v half to even and clamps it to the int32 range.
func ClampInt32(v float64) int32 {
	if v != v { // NaN
		return 0
	}
	r := math.RoundToEven(v)
	switch {
	case r <= math.MinInt32:
		return math.MinInt32
	case r >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(r)
}
