package pixbuf

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// FromImage copies an image.Image into a new buffer.
//
// Gray images become ModeL, Gray16 becomes ModeI, CMYK becomes ModeCMYK.
// Every other image is drawn into straight-alpha RGBA and becomes ModeRGBA.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, ErrInvalidDimensions
	}
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	switch src := img.(type) {
	case *image.Gray:
		b, _ := NewMode(ModeL, w, h)
		copyRows(b, src.Pix, src.Stride, src.PixOffset(r.Min.X, r.Min.Y), w)
		return b, nil

	case *image.Gray16:
		b, _ := NewMode(ModeI, w, h)
		for y := range h {
			row, _ := b.RowInt32(y)
			off := src.PixOffset(r.Min.X, r.Min.Y+y)
			for x := range w {
				i := off + 2*x
				row[x] = int32(src.Pix[i])<<8 | int32(src.Pix[i+1])
			}
		}
		return b, nil

	case *image.CMYK:
		b, _ := NewMode(ModeCMYK, w, h)
		copyRows(b, src.Pix, src.Stride, src.PixOffset(r.Min.X, r.Min.Y), 4*w)
		return b, nil

	case *image.NRGBA:
		b, _ := NewMode(ModeRGBA, w, h)
		copyRows(b, src.Pix, src.Stride, src.PixOffset(r.Min.X, r.Min.Y), 4*w)
		return b, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, r.Min, draw.Src)
	b, _ := NewMode(ModeRGBA, w, h)
	copyRows(b, nrgba.Pix, nrgba.Stride, 0, 4*w)
	return b, nil
}

// copyRows copies n bytes per row from pix into the Uint8 buffer b.
func copyRows(b *Buffer, pix []uint8, stride, offset, n int) {
	for y := range b.height {
		row, _ := b.RowUint8(y)
		start := offset + y*stride
		copy(row[:n], pix[start:start+n])
	}
}

// ToImage copies the buffer into a new image.Image.
//
// L, P and 1 become *image.Gray, I becomes *image.Gray16 (clamped to
// [0, 65535]), RGB and RGBA become *image.NRGBA, CMYK becomes *image.CMYK.
// Raw layouts are mapped by element type and channel count. Other modes
// return ErrUnsupportedMode.
func (b *Buffer) ToImage() (image.Image, error) {
	if b.released() {
		return nil, ErrOutOfRange
	}
	rect := image.Rect(0, 0, b.width, b.height)

	mode := b.mode
	if mode == ModeNone {
		mode = b.guessMode()
	}

	switch mode {
	case ModeL, ModeP, Mode1:
		img := image.NewGray(rect)
		b.copyOut(img.Pix, img.Stride, 1)
		return img, nil

	case ModeI:
		img := image.NewGray16(rect)
		for y := range b.height {
			row, _ := b.RowInt32(y)
			out := img.Pix[y*img.Stride:]
			step := b.PixelElements()
			for x := range b.width {
				v := row[x*step]
				v = max(0, min(v, 0xffff))
				out[2*x] = uint8(v >> 8)
				out[2*x+1] = uint8(v)
			}
		}
		return img, nil

	case ModeRGB:
		img := image.NewNRGBA(rect)
		b.copyOut(img.Pix, img.Stride, 3)
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
		return img, nil

	case ModeRGBA:
		img := image.NewNRGBA(rect)
		b.copyOut(img.Pix, img.Stride, 4)
		return img, nil

	case ModeCMYK:
		img := image.NewCMYK(rect)
		b.copyOut(img.Pix, img.Stride, 4)
		return img, nil
	}
	return nil, fmt.Errorf("%w: cannot convert %s (%s x%d) to image.Image",
		ErrUnsupportedMode, b.mode, b.elem, b.channels)
}

// guessMode maps a raw layout onto the mode with the same storage.
func (b *Buffer) guessMode() Mode {
	switch {
	case b.elem == Uint8 && b.channels == 1:
		return ModeL
	case b.elem == Uint8 && b.channels == 3:
		return ModeRGB
	case b.elem == Uint8 && b.channels == 4:
		return ModeRGBA
	case b.elem == Int32 && b.channels == 1:
		return ModeI
	}
	return ModeNone
}

// copyOut copies ch channels of every pixel into a 1- or 4-byte-per-pixel
// destination. Destination channels beyond ch are left untouched.
func (b *Buffer) copyOut(pix []uint8, stride, ch int) {
	outPS := 1
	if ch > 1 {
		outPS = 4
	}
	ps := b.pixelSize
	for y := range b.height {
		row, _ := b.RowUint8(y)
		out := pix[y*stride:]
		for x := range b.width {
			copy(out[x*outPS:x*outPS+ch], row[x*ps:x*ps+ch])
		}
	}
}
