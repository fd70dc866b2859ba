package resample

import "github.com/gogpu/resample/pixbuf"

// PassOrder selects which axis is resampled first.
type PassOrder uint8

const (
	// HorizontalFirst changes the width first, then the height. This is the
	// default and matches Pillow's rounding behavior.
	HorizontalFirst PassOrder = iota

	// VerticalFirst changes the height first, then the width.
	VerticalFirst
)

// String returns the name of the pass order.
func (o PassOrder) String() string {
	switch o {
	case HorizontalFirst:
		return "HorizontalFirst"
	case VerticalFirst:
		return "VerticalFirst"
	default:
		return "Unknown"
	}
}

// defaultCacheSize is the number of coefficient tables kept by the shared
// cache. A resample uses two tables.
const defaultCacheSize = 64

// Option configures a Resampler during creation.
//
// Example:
//
//	// Serial resampler
//	r := resample.New()
//
//	// Four workers, intermediate buffers from a pool
//	r := resample.New(resample.WithWorkers(4), resample.WithBufferPool(pixbuf.NewPool(8)))
//	defer r.Close()
type Option func(*options)

// options holds optional configuration for Resampler creation.
type options struct {
	workers   int
	order     PassOrder
	pool      *pixbuf.Pool
	cacheSize int
	ownCache  bool
}

// defaultOptions returns the default resampler options.
func defaultOptions() options {
	return options{
		workers: 1,
		order:   HorizontalFirst,
	}
}

// WithWorkers sets the number of goroutines used per pass.
// Values of 1 or less keep resampling on the calling goroutine;
// use runtime.GOMAXPROCS(0) for one worker per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPassOrder selects the axis resampled first.
func WithPassOrder(order PassOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithBufferPool makes the Resampler take intermediate and output buffers
// from p. Callers return output buffers by calling Release on them.
func WithBufferPool(p *pixbuf.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithCache gives the Resampler a private coefficient cache holding up to
// n tables. n <= 0 disables caching. Without this option the Resampler
// shares a package-level cache.
func WithCache(n int) Option {
	return func(o *options) {
		o.cacheSize = n
		o.ownCache = true
	}
}
