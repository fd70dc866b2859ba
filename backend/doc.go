// Package backend provides a pluggable registry of image resizers.
//
// The native backend runs the resample engine and is always available.
// Subpackages wrap other Go imaging libraries behind the same interface so
// that their output and speed can be compared:
//
//	import (
//		"github.com/gogpu/resample/backend"
//		_ "github.com/gogpu/resample/backend/nfnt"
//	)
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The native backend is registered on import of this package; the others
// register when their package is imported.
//
// # Backend Selection
//
// Use Default() to get the preferred available backend, or Get() to
// request a specific backend by name:
//
//	r := backend.Default()
//	out, err := r.Resize(img, 320, 240, resample.Lanczos)
//
//	r := backend.Get("imaging")
//
// # Available Backends
//
//   - "native": the resample engine (always available)
//   - "xdraw": golang.org/x/image/draw with the resample kernels
//   - "nfnt": github.com/nfnt/resize
//   - "imaging": github.com/disintegration/imaging with the resample kernels
//   - "gift": github.com/disintegration/gift
//   - "bild": github.com/anthonynsimon/bild/transform
//   - "rez": github.com/bamiaux/rez
package backend
