package resample

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/resample/pixbuf"
)

// scaler adapts a Resampler to draw.Scaler.
type scaler struct {
	r      *Resampler
	filter Filter
}

// Scaler returns a draw.Scaler that resamples with filter f on the calling
// goroutine, so the engine can stand in wherever golang.org/x/image/draw
// expects an interpolator.
//
// The source rectangle is converted to a pixbuf buffer (RGBA for color
// images, L for gray), resampled to the destination rectangle size and
// composited with op.
func Scaler(f Filter) draw.Scaler {
	return scaler{r: serial, filter: f}
}

// Scaler returns a draw.Scaler backed by r.
func (r *Resampler) Scaler(f Filter) draw.Scaler {
	return scaler{r: r, filter: f}
}

// Scale implements draw.Scaler. Failures are logged at Debug level and
// leave dst untouched, since draw.Scaler has no error result.
//
// sr is mapped onto dr as a whole. Clipping dr to dst or sr to src limits
// which destination pixels are written but never changes the scale.
// Destination pixels whose source area lies outside src are left as is.
func (s scaler) Scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op, opts *draw.Options) {
	if dr.Empty() || sr.Empty() {
		return
	}
	isr := sr.Intersect(src.Bounds())
	adr := dr.Intersect(dst.Bounds())
	if isr.Empty() || adr.Empty() {
		return
	}

	x0, x1, bx0, bx1 := clipAxis(dr.Min.X, dr.Max.X, adr.Min.X, adr.Max.X, sr.Min.X, sr.Max.X, isr.Min.X, isr.Max.X)
	y0, y1, by0, by1 := clipAxis(dr.Min.Y, dr.Max.Y, adr.Min.Y, adr.Max.Y, sr.Min.Y, sr.Max.Y, isr.Min.Y, isr.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	wr := image.Rect(x0, y0, x1, y1)

	buf, err := pixbuf.FromImage(subImage(src, isr))
	if err != nil {
		Logger().Debug("resample: scaler source", "err", err)
		return
	}
	out, err := s.r.Apply(buf, Request{
		Width:  wr.Dx(),
		Height: wr.Dy(),
		Filter: s.filter,
		Box:    &Region{X0: bx0, Y0: by0, X1: bx1, Y1: by1},
	})
	if err != nil {
		Logger().Debug("resample: scaler", "err", err)
		return
	}
	img, err := out.ToImage()
	if err != nil {
		Logger().Debug("resample: scaler output", "err", err)
		return
	}

	if opts != nil && opts.DstMask != nil {
		draw.DrawMask(dst, wr, img, img.Bounds().Min, opts.DstMask, opts.DstMaskP.Add(wr.Min), op)
		return
	}
	draw.Draw(dst, wr, img, img.Bounds().Min, op)
}

// clipAxis clips one axis of a scale mapping source span [r0, r1) onto
// destination span [d0, d1). It returns the destination pixels [lo, hi)
// inside [a0, a1) whose source area lies within [s0, s1), and that area as
// [b0, b1) relative to s0.
func clipAxis(d0, d1, a0, a1, r0, r1, s0, s1 int) (lo, hi int, b0, b1 float64) {
	dw, rw := float64(d1-d0), float64(r1-r0)
	lo = max(a0, d0+int(math.Ceil(float64(s0-r0)*dw/rw)))
	hi = min(a1, d0+int(math.Floor(float64(s1-r0)*dw/rw)))
	if lo >= hi {
		return lo, hi, 0, 0
	}
	b0 = max(float64(lo-d0)*rw/dw+float64(r0-s0), 0)
	b1 = min(float64(hi-d0)*rw/dw+float64(r0-s0), float64(s1-s0))
	return lo, hi, b0, b1
}

// subImage returns the part of img inside r.
func subImage(img image.Image, r image.Rectangle) image.Image {
	if img.Bounds() == r {
		return img
	}
	if si, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return si.SubImage(r)
	}
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}
