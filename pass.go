package resample

import (
	"github.com/gogpu/resample/internal/parallel"
	"github.com/gogpu/resample/pixbuf"
)

// sample is the set of element types a pass computes over.
type sample interface {
	~uint8 | ~int32 | ~float32
}

// plane gives a pass typed row access to a buffer.
type plane[T sample] struct {
	row func(y int) []T
	pe  int // elements per pixel, including padding
}

// passParams describes one 1D pass.
//
// For a horizontal pass, output row y reads source row y+offset and output
// column x reads the source columns of taps[x] shifted by shift. For a
// vertical pass the roles swap: output column x reads source column
// x+offset and output row y reads the source rows of taps[y] shifted by
// shift. The offsets let a pass read from a cropped intermediate buffer.
type passParams struct {
	width, height int
	channels      int
	table         *coeffTable
	offset, shift int
}

// minBandRows keeps bands large enough that scheduling stays cheap next to
// the work per band.
const minBandRows = 8

func horizontalPass[T sample](pool *parallel.WorkerPool, dst, src plane[T], p passParams, store func(float64) T) {
	parallel.ForBands(pool, p.height, minBandRows, func(lo, hi int) {
		var acc [pixbuf.MaxChannels]float64
		for y := lo; y < hi; y++ {
			in := src.row(y + p.offset)
			out := dst.row(y)
			for x := range p.width {
				t := &p.table.taps[x]
				acc = [pixbuf.MaxChannels]float64{}
				base := (t.start + p.shift) * src.pe
				for k, w := range t.weights {
					px := in[base+k*src.pe:]
					for c := range p.channels {
						acc[c] += w * float64(px[c])
					}
				}
				o := out[x*dst.pe:]
				for c := range p.channels {
					o[c] = store(acc[c])
				}
			}
		}
	})
}

func verticalPass[T sample](pool *parallel.WorkerPool, dst, src plane[T], p passParams, store func(float64) T) {
	parallel.ForBands(pool, p.height, minBandRows, func(lo, hi int) {
		n := p.width * p.channels
		acc := make([]float64, n)
		for y := lo; y < hi; y++ {
			t := &p.table.taps[y]
			clear(acc)
			for k, w := range t.weights {
				in := src.row(t.start + p.shift + k)[p.offset*src.pe:]
				for x := range p.width {
					px := in[x*src.pe:]
					a := acc[x*p.channels:]
					for c := range p.channels {
						a[c] += w * float64(px[c])
					}
				}
			}
			out := dst.row(y)
			for x := range p.width {
				o := out[x*dst.pe:]
				a := acc[x*p.channels:]
				for c := range p.channels {
					o[c] = store(a[c])
				}
			}
		}
	})
}

// Row accessors and stores per element type.

func uint8Plane(b *pixbuf.Buffer) plane[uint8] {
	return plane[uint8]{
		row: func(y int) []uint8 { r, _ := b.RowUint8(y); return r },
		pe:  b.PixelElements(),
	}
}

func int32Plane(b *pixbuf.Buffer) plane[int32] {
	return plane[int32]{
		row: func(y int) []int32 { r, _ := b.RowInt32(y); return r },
		pe:  b.PixelElements(),
	}
}

func float32Plane(b *pixbuf.Buffer) plane[float32] {
	return plane[float32]{
		row: func(y int) []float32 { r, _ := b.RowFloat32(y); return r },
		pe:  b.PixelElements(),
	}
}

func storeFloat32(v float64) float32 { return float32(v) }

// axis identifies the direction of a pass.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) String() string {
	if a == horizontal {
		return "horizontal"
	}
	return "vertical"
}

// runPass dispatches one pass on the element type of src. dst must have the
// same element type and channel count.
func runPass(pool *parallel.WorkerPool, a axis, dst, src *pixbuf.Buffer, p passParams) {
	switch src.ElementType() {
	case pixbuf.Uint8:
		dispatch(pool, a, uint8Plane(dst), uint8Plane(src), p, pixbuf.ClampUint8)
	case pixbuf.Int32:
		dispatch(pool, a, int32Plane(dst), int32Plane(src), p, pixbuf.ClampInt32)
	case pixbuf.Float32:
		dispatch(pool, a, float32Plane(dst), float32Plane(src), p, storeFloat32)
	}
}

func dispatch[T sample](pool *parallel.WorkerPool, a axis, dst, src plane[T], p passParams, store func(float64) T) {
	if a == horizontal {
		horizontalPass(pool, dst, src, p, store)
	} else {
		verticalPass(pool, dst, src, p, store)
	}
}
