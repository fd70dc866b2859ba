// Package resample resizes raster images held in pixbuf buffers.
//
// # Overview
//
// Resampling is separable: a horizontal pass changes the width, then a
// vertical pass changes the height. Each pass computes every output sample
// as a weighted sum of nearby source samples, with weights taken from the
// selected filter kernel and renormalized where the kernel window is
// clipped by the image border. The result is compatible with Pillow's
// Image.resize for the same filter and box.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/resample"
//		"github.com/gogpu/resample/pixbuf"
//	)
//
//	src, _ := pixbuf.NewMode(pixbuf.ModeRGB, 640, 480)
//	dst, err := resample.Resample(src, 320, 240, resample.Lanczos)
//
// # Filters
//
// Nearest point-samples the source. Box, Bilinear, Hamming, Bicubic and
// Lanczos are convolution kernels with support radii 0.5, 1, 1, 2 and 3;
// when downscaling the support widens with the scale factor.
//
// # Element Types
//
// Uint8 and Int32 results are rounded after each pass (Uint8 half up, Int32
// half to even) and clamped to the type's range. Float32 results are stored
// as computed.
//
// # Concurrency
//
// The package-level Resample runs on the calling goroutine. A Resampler
// created with WithWorkers splits output rows into bands and runs them on a
// worker pool. Source buffers are only read, so a single source may be
// resampled concurrently.
//
// # Logging
//
// The package logs nothing by default. SetLogger enables Debug-level
// records describing each resample plan.
package resample
