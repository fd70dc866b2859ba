package pixbuf

import "sync"

// Pool is a thread-safe pool for reusing Buffer instances.
//
// Pool groups buffers by dimensions and layout, so intermediate buffers of a
// repeated resize are allocated once. Buffers handed out by Get remember
// their pool and return to it on Release.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer layouts.
type poolKey struct {
	width    int
	height   int
	elem     ElementType
	channels int
	mode     Mode
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed buffer with the given layout from the pool, or
// allocates a new one. The mode must be ModeNone or agree with elem and
// channels.
func (p *Pool) Get(width, height int, elem ElementType, channels int, mode Mode) (*Buffer, error) {
	if err := checkLayout(width, height, elem, channels); err != nil {
		return nil, err
	}
	if mode != ModeNone && (mode.ElementType() != elem || mode.Channels() != channels) {
		return nil, ErrUnsupportedMode
	}
	key := poolKey{width: width, height: height, elem: elem, channels: channels, mode: mode}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		buf.idle = false
		p.mu.Unlock()

		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	buf := newBuffer(width, height, elem, channels, mode, width*PixelSize(elem, channels))
	buf.pool = p
	return buf, nil
}

// GetLike retrieves a buffer with the layout of b and the given dimensions.
func (p *Pool) GetLike(b *Buffer, width, height int) (*Buffer, error) {
	return p.Get(width, height, b.elem, b.channels, b.mode)
}

// Put returns a buffer to the pool for reuse. The buffer is cleared when it
// is handed out again. Buffers with a custom stride, released buffers and
// buffers beyond the bucket capacity are discarded. Putting a buffer that is
// already idle in the pool is a no-op.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil || buf.released() || buf.stride != buf.width*buf.pixelSize {
		return
	}

	key := poolKey{
		width:    buf.width,
		height:   buf.height,
		elem:     buf.elem,
		channels: buf.channels,
		mode:     buf.mode,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if buf.idle {
		return
	}
	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	buf.pool = p
	buf.idle = true
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of idle buffers held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
