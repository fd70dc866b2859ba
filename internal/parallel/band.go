package parallel

// bandsPerWorker oversubscribes the pool so that stealing can balance
// uneven bands.
const bandsPerWorker = 4

// Band is a half-open range of rows [Lo, Hi).
type Band struct {
	Lo, Hi int
}

// Split partitions [0, n) into at most parts contiguous, non-overlapping
// bands of at least minSize rows each (a single band when n < minSize).
// Bands cover the range in order and differ in size by at most one row.
func Split(n, parts, minSize int) []Band {
	if n <= 0 {
		return nil
	}
	minSize = max(minSize, 1)
	parts = max(min(parts, n/minSize), 1)

	bands := make([]Band, 0, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for i := range parts {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, Band{Lo: lo, Hi: lo + size})
		lo += size
	}
	return bands
}

// ForBands calls fn for contiguous bands covering [0, n).
//
// With a nil pool, a single-worker pool, or too few rows to split, fn runs
// once on the calling goroutine with the whole range. Otherwise the bands
// run on the pool and ForBands returns when all of them have finished. fn
// must only write state owned by its band.
func ForBands(pool *WorkerPool, n, minSize int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if pool == nil || pool.Workers() < 2 || n < 2*max(minSize, 1) {
		fn(0, n)
		return
	}

	bands := Split(n, pool.Workers()*bandsPerWorker, minSize)
	if len(bands) == 1 {
		fn(0, n)
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Lo, b.Hi) }
	}
	pool.ExecuteAll(work)
}
