package resample

import (
	"math"

	"github.com/gogpu/resample/internal/cache"
)

// tap is the contribution of a contiguous run of source samples to one
// output sample: weights[k] applies to source index start+k.
type tap struct {
	start   int
	weights []float64
}

// coeffTable holds the taps for every output position along one axis.
// Tables are immutable after construction and shared between goroutines.
type coeffTable struct {
	taps []tap

	// first and last bound the source indices referenced by any tap,
	// as the half-open range [first, last).
	first, last int
}

// tableKey identifies a coefficient table. in0 and in1 are the source span
// sampled along the axis (the box edges, or 0 and inSize).
type tableKey struct {
	inSize, outSize int
	in0, in1        float64
	filter          Filter
}

// sharedTables is the coefficient cache used by Resample and by Resamplers
// created without WithCache.
var sharedTables = cache.New[tableKey, *coeffTable](defaultCacheSize)

// tableFor returns the table for key, from c when it is non-nil.
func tableFor(c *cache.Cache[tableKey, *coeffTable], key tableKey) *coeffTable {
	if c == nil {
		return precompute(key)
	}
	return c.GetOrCreate(key, func() *coeffTable {
		Logger().Debug("resample: computing coefficients",
			"in", key.inSize, "out", key.outSize, "filter", key.filter)
		return precompute(key)
	})
}

// precompute builds the taps mapping key.inSize source samples onto
// key.outSize output samples.
//
// The span [in0, in1) is divided evenly between the outputs. Output d is
// centered on source coordinate in0 + (d+0.5)*scale - 0.5 in pixel-index
// space. When downscaling, the kernel is stretched by the scale factor so
// every source sample contributes. Weights outside the source are dropped
// and the remainder renormalized to sum to 1.
func precompute(key tableKey) *coeffTable {
	if key.filter == Nearest {
		return precomputeNearest(key)
	}

	info := filterTable[key.filter]
	scale := (key.in1 - key.in0) / float64(key.outSize)
	filterScale := max(scale, 1)
	support := info.radius * filterScale

	t := &coeffTable{
		taps:  make([]tap, key.outSize),
		first: key.inSize,
	}
	var (
		backing = make([]float64, 0, (int(math.Ceil(support))*2+3)*key.outSize)
		spans   = make([][2]int, key.outSize) // offset into backing, length
		window  []float64
	)
	for d := range key.outSize {
		center := key.in0 + (float64(d)+0.5)*scale - 0.5
		lo := max(int(math.Floor(center-support)), 0)
		hi := min(int(math.Ceil(center+support)), key.inSize-1)

		window = window[:0]
		sum := 0.0
		for i := lo; i <= hi; i++ {
			v := info.kernel((float64(i) - center) / filterScale)
			window = append(window, v)
			sum += v
		}

		// Trim zero weights so passes never touch samples that do not
		// contribute.
		start, w := lo, window
		for len(w) > 0 && w[0] == 0 {
			w = w[1:]
			start++
		}
		for len(w) > 0 && w[len(w)-1] == 0 {
			w = w[:len(w)-1]
		}

		off := len(backing)
		if sum == 0 || len(w) == 0 {
			// The window fell between source samples; take the nearest one.
			start = clampIndex(int(math.Floor(center+0.5)), key.inSize)
			backing = append(backing, 1)
		} else {
			for _, v := range w {
				backing = append(backing, v/sum)
			}
		}

		spans[d] = [2]int{off, len(backing) - off}
		t.taps[d].start = start
		t.first = min(t.first, start)
		t.last = max(t.last, start+spans[d][1])
	}
	for d, sp := range spans {
		t.taps[d].weights = backing[sp[0] : sp[0]+sp[1] : sp[0]+sp[1]]
	}
	return t
}

// precomputeNearest builds single-sample taps: output d copies the source
// sample containing coordinate in0 + (d+0.5)*scale.
func precomputeNearest(key tableKey) *coeffTable {
	scale := (key.in1 - key.in0) / float64(key.outSize)
	backing := make([]float64, key.outSize)

	t := &coeffTable{
		taps:  make([]tap, key.outSize),
		first: key.inSize,
	}
	for d := range key.outSize {
		i := clampIndex(int(math.Floor(key.in0+(float64(d)+0.5)*scale)), key.inSize)
		backing[d] = 1
		t.taps[d] = tap{start: i, weights: backing[d : d+1 : d+1]}
		t.first = min(t.first, i)
		t.last = max(t.last, i+1)
	}
	return t
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
