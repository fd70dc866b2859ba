package resample

import (
	"fmt"

	"github.com/gogpu/resample/internal/cache"
	"github.com/gogpu/resample/internal/parallel"
	"github.com/gogpu/resample/pixbuf"
)

// Region is a rectangle of the source image in pixel coordinates, with
// fractional edges allowed. It corresponds to the box argument of Pillow's
// Image.resize: only the region is resampled, stretched over the whole
// output.
type Region struct {
	X0, Y0, X1, Y1 float64
}

// validate checks that the region is non-empty and inside a width×height
// image.
func (r Region) validate(width, height int) error {
	switch {
	case !(r.X0 >= 0) || !(r.Y0 >= 0): // also rejects NaN
		return fmt.Errorf("%w: offset (%g, %g) is negative", ErrInvalidBox, r.X0, r.Y0)
	case !(r.X1 <= float64(width)) || !(r.Y1 <= float64(height)):
		return fmt.Errorf("%w: (%g, %g) exceeds %dx%d source", ErrInvalidBox, r.X1, r.Y1, width, height)
	case !(r.X1 > r.X0) || !(r.Y1 > r.Y0):
		return fmt.Errorf("%w: empty region %gx%g", ErrInvalidBox, r.X1-r.X0, r.Y1-r.Y0)
	}
	return nil
}

// Request fully describes one resample: the output is a function of the
// source buffer and the request alone.
type Request struct {
	// Width and Height are the output dimensions.
	Width, Height int

	// Filter selects the kernel.
	Filter Filter

	// Box restricts sampling to a region of the source. Nil samples the
	// whole source.
	Box *Region
}

// Resampler executes resample requests with a fixed configuration.
//
// Thread safety: Resampler is safe for concurrent use. Close must not be
// called while requests are in flight.
type Resampler struct {
	opts    options
	workers *parallel.WorkerPool
	tables  *cache.Cache[tableKey, *coeffTable]
}

// serial backs the package-level Resample.
var serial = New()

// New creates a Resampler. Without options it runs on the calling goroutine,
// allocates fresh buffers and shares the package coefficient cache.
func New(opts ...Option) *Resampler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resampler{opts: o, tables: sharedTables}
	if o.workers > 1 {
		r.workers = parallel.NewWorkerPool(o.workers)
	}
	if o.ownCache {
		r.tables = nil
		if o.cacheSize > 0 {
			r.tables = cache.New[tableKey, *coeffTable](o.cacheSize)
		}
	}
	return r
}

// Close stops the Resampler's workers. The Resampler stays usable and
// runs serially afterwards. Close is safe to call multiple times.
func (r *Resampler) Close() {
	if r.workers != nil {
		r.workers.Close()
	}
}

// Resample is shorthand for Apply with a request covering the whole source.
func (r *Resampler) Resample(src *pixbuf.Buffer, width, height int, f Filter) (*pixbuf.Buffer, error) {
	return r.Apply(src, Request{Width: width, Height: height, Filter: f})
}

// Resample resizes src to width×height with filter f on the calling
// goroutine. The result is a new buffer with the element type, channel
// count and mode of src; src is not modified.
//
// Errors: ErrNilBuffer, ErrInvalidDimension for non-positive sizes,
// ErrUnsupportedElementType, ErrUnknownFilter, and ErrModeUnsupported when
// f is not Nearest and src has mode P or 1. Errors are reported before any
// buffer is allocated.
func Resample(src *pixbuf.Buffer, width, height int, f Filter) (*pixbuf.Buffer, error) {
	return serial.Apply(src, Request{Width: width, Height: height, Filter: f})
}

// Apply executes req against src.
//
// A pass whose axis keeps its size and has no box is skipped; when both are
// skipped the result is a copy of src. The first pass only produces the
// lines the second pass reads.
func (r *Resampler) Apply(src *pixbuf.Buffer, req Request) (*pixbuf.Buffer, error) {
	if err := check(src, req); err != nil {
		return nil, err
	}

	srcW, srcH := src.Bounds()
	box := Region{X1: float64(srcW), Y1: float64(srcH)}
	if req.Box != nil {
		box = *req.Box
	}
	needH := req.Width != srcW || box.X0 != 0 || box.X1 != float64(srcW)
	needV := req.Height != srcH || box.Y0 != 0 || box.Y1 != float64(srcH)

	Logger().Debug("resample",
		"src", fmt.Sprintf("%dx%d", srcW, srcH),
		"dst", fmt.Sprintf("%dx%d", req.Width, req.Height),
		"filter", req.Filter,
		"type", src.ElementType(),
		"channels", src.Channels(),
		"horizontal", needH,
		"vertical", needV,
		"order", r.opts.order)

	if !needH && !needV {
		return src.Clone(), nil
	}

	var hTab, vTab *coeffTable
	if needH {
		hTab = tableFor(r.tables, tableKey{srcW, req.Width, box.X0, box.X1, req.Filter})
	}
	if needV {
		vTab = tableFor(r.tables, tableKey{srcH, req.Height, box.Y0, box.Y1, req.Filter})
	}

	ch := src.Channels()
	switch {
	case !needV:
		out, err := r.alloc(src, req.Width, srcH)
		if err != nil {
			return nil, err
		}
		r.pass(horizontal, out, src, passParams{width: req.Width, height: srcH, channels: ch, table: hTab})
		return out, nil

	case !needH:
		out, err := r.alloc(src, srcW, req.Height)
		if err != nil {
			return nil, err
		}
		r.pass(vertical, out, src, passParams{width: srcW, height: req.Height, channels: ch, table: vTab})
		return out, nil

	case r.opts.order == VerticalFirst:
		cols := hTab.last - hTab.first
		tmp, err := r.alloc(src, cols, req.Height)
		if err != nil {
			return nil, err
		}
		defer tmp.Release()
		r.pass(vertical, tmp, src, passParams{
			width: cols, height: req.Height, channels: ch, table: vTab, offset: hTab.first,
		})

		out, err := r.alloc(src, req.Width, req.Height)
		if err != nil {
			return nil, err
		}
		r.pass(horizontal, out, tmp, passParams{
			width: req.Width, height: req.Height, channels: ch, table: hTab, shift: -hTab.first,
		})
		return out, nil

	default:
		rows := vTab.last - vTab.first
		tmp, err := r.alloc(src, req.Width, rows)
		if err != nil {
			return nil, err
		}
		defer tmp.Release()
		r.pass(horizontal, tmp, src, passParams{
			width: req.Width, height: rows, channels: ch, table: hTab, offset: vTab.first,
		})

		out, err := r.alloc(src, req.Width, req.Height)
		if err != nil {
			return nil, err
		}
		r.pass(vertical, out, tmp, passParams{
			width: req.Width, height: req.Height, channels: ch, table: vTab, shift: -vTab.first,
		})
		return out, nil
	}
}

// check validates a request before anything is allocated.
func check(src *pixbuf.Buffer, req Request) error {
	if src == nil {
		return ErrNilBuffer
	}
	if req.Width <= 0 || req.Height <= 0 {
		return fmt.Errorf("resample: target size %dx%d: %w", req.Width, req.Height, ErrInvalidDimension)
	}
	w, h := src.Bounds()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resample: source size %dx%d: %w", w, h, ErrInvalidDimension)
	}
	if !src.ElementType().IsValid() {
		return fmt.Errorf("resample: source %v: %w", src.ElementType(), ErrUnsupportedElementType)
	}
	if _, err := src.Row(0); err != nil {
		return fmt.Errorf("resample: source: %w", err)
	}
	if !req.Filter.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownFilter, uint8(req.Filter))
	}
	if src.Mode().PointSampledOnly() && req.Filter != Nearest {
		return fmt.Errorf("%w: %v on mode %v", ErrModeUnsupported, req.Filter, src.Mode())
	}
	if req.Box != nil {
		if err := req.Box.validate(w, h); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resampler) alloc(like *pixbuf.Buffer, width, height int) (*pixbuf.Buffer, error) {
	if r.opts.pool != nil {
		return r.opts.pool.GetLike(like, width, height)
	}
	return pixbuf.NewLike(like, width, height)
}

func (r *Resampler) pass(a axis, dst, src *pixbuf.Buffer, p passParams) {
	Logger().Debug("resample: pass", "axis", a, "width", p.width, "height", p.height, "offset", p.offset)
	runPass(r.workers, a, dst, src, p)
}
