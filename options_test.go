package resample

import (
	"testing"

	"github.com/gogpu/resample/pixbuf"
)

// TestNewDefault tests that New is serial and uses the shared cache by default.
func TestNewDefault(t *testing.T) {
	r := New()
	defer r.Close()

	if r.opts.workers != 1 {
		t.Errorf("workers = %d, want 1", r.opts.workers)
	}
	if r.opts.order != HorizontalFirst {
		t.Errorf("order = %v, want HorizontalFirst", r.opts.order)
	}
	if r.workers != nil {
		t.Error("serial resampler started a worker pool")
	}
	if r.tables != sharedTables {
		t.Error("default resampler does not use the shared cache")
	}
	if r.opts.pool != nil {
		t.Error("default resampler has a buffer pool")
	}
}

// TestWithWorkers tests that more than one worker starts a pool.
func TestWithWorkers(t *testing.T) {
	tests := []struct {
		n        int
		wantPool bool
	}{
		{-1, false},
		{0, false},
		{1, false},
		{2, true},
		{8, true},
	}
	for _, tt := range tests {
		r := New(WithWorkers(tt.n))
		if got := r.workers != nil; got != tt.wantPool {
			t.Errorf("WithWorkers(%d): pool started = %v, want %v", tt.n, got, tt.wantPool)
		}
		if tt.wantPool && r.workers.Workers() != tt.n {
			t.Errorf("WithWorkers(%d): pool has %d workers", tt.n, r.workers.Workers())
		}
		r.Close()
		r.Close()
	}
}

// TestWithPassOrder tests pass order selection.
func TestWithPassOrder(t *testing.T) {
	r := New(WithPassOrder(VerticalFirst))
	if r.opts.order != VerticalFirst {
		t.Errorf("order = %v, want VerticalFirst", r.opts.order)
	}
}

// TestWithBufferPool tests that the pool is stored.
func TestWithBufferPool(t *testing.T) {
	p := pixbuf.NewPool(4)
	r := New(WithBufferPool(p))
	if r.opts.pool != p {
		t.Error("buffer pool not set")
	}
}

// TestWithCache tests private and disabled coefficient caches.
func TestWithCache(t *testing.T) {
	r := New(WithCache(3))
	if r.tables == nil || r.tables == sharedTables {
		t.Fatal("WithCache(3) did not create a private cache")
	}
	if got := r.tables.Capacity(); got != 3 {
		t.Errorf("Capacity() = %d, want 3", got)
	}

	for _, n := range []int{0, -5} {
		if r := New(WithCache(n)); r.tables != nil {
			t.Errorf("WithCache(%d) kept a cache", n)
		}
	}
}

// TestMultipleOptions tests that later options override earlier ones.
func TestMultipleOptions(t *testing.T) {
	r := New(
		WithPassOrder(VerticalFirst),
		WithCache(2),
		WithPassOrder(HorizontalFirst),
		WithCache(0),
	)
	if r.opts.order != HorizontalFirst {
		t.Errorf("order = %v, want HorizontalFirst", r.opts.order)
	}
	if r.tables != nil {
		t.Error("last WithCache(0) did not disable caching")
	}
}

func TestPassOrderString(t *testing.T) {
	tests := []struct {
		order PassOrder
		want  string
	}{
		{HorizontalFirst, "HorizontalFirst"},
		{VerticalFirst, "VerticalFirst"},
		{PassOrder(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.order.String(); got != tt.want {
			t.Errorf("PassOrder(%d).String() = %q, want %q", tt.order, got, tt.want)
		}
	}
}
