package backend

import (
	"image"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/pixbuf"
)

// Backend name constants.
const (
	// BackendNative is the name of the resample engine backend.
	BackendNative = "native"
	// BackendXDraw is the name of the golang.org/x/image/draw backend.
	BackendXDraw = "xdraw"
)

// NativeResizer runs the resample engine on image.Image values.
// Color images are resampled as non-premultiplied RGBA, gray images as L,
// 16-bit gray as I and CMYK as CMYK, so the output keeps the source's
// color model where pixbuf can represent it.
type NativeResizer struct {
	r *resample.Resampler
}

// init registers the native backend on package import.
func init() {
	Register(BackendNative, func() Resizer {
		return &NativeResizer{}
	})
}

// NewNative creates a native backend. Options configure the underlying
// Resampler; without options it runs serially. Call Close when options
// start workers.
func NewNative(opts ...resample.Option) *NativeResizer {
	if len(opts) == 0 {
		return &NativeResizer{}
	}
	return &NativeResizer{r: resample.New(opts...)}
}

// Name returns the backend identifier.
func (n *NativeResizer) Name() string {
	return BackendNative
}

// Resize implements Resizer.
func (n *NativeResizer) Resize(img image.Image, width, height int, f resample.Filter) (image.Image, error) {
	if err := Validate(img, width, height, f); err != nil {
		return nil, err
	}
	src, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, err
	}

	var out *pixbuf.Buffer
	if n.r != nil {
		out, err = n.r.Resample(src, width, height, f)
	} else {
		out, err = resample.Resample(src, width, height, f)
	}
	if err != nil {
		return nil, err
	}
	return out.ToImage()
}

// Close stops the workers of the underlying Resampler, if any.
func (n *NativeResizer) Close() {
	if n.r != nil {
		n.r.Close()
	}
}
