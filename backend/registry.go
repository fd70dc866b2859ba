package backend

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/gogpu/resample"
)

// Factory creates a new backend instance.
type Factory func() Resizer

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendNative, BackendXDraw}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) Resizer {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Lookup is like Get but reports a missing backend as an error wrapping
// ErrBackendNotAvailable.
func Lookup(name string) (Resizer, error) {
	if r := Get(name); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrBackendNotAvailable, name, Available())
}

// Default returns the best available backend based on priority.
// Priority order: native > xdraw > any other registered backend.
// Returns nil if no backends are registered.
func Default() Resizer {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if r := factory(); r != nil {
				return r
			}
		}
	}

	// Fallback: first available by name, for a stable choice.
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if r := backends[name](); r != nil {
			return r
		}
	}
	return nil
}

// Resize looks up the named backend and resizes img with it. An empty name
// selects Default().
func Resize(name string, img image.Image, width, height int, f resample.Filter) (image.Image, error) {
	var r Resizer
	if name == "" {
		r = Default()
		if r == nil {
			return nil, ErrBackendNotAvailable
		}
	} else {
		var err error
		if r, err = Lookup(name); err != nil {
			return nil, err
		}
	}

	resample.Logger().Debug("backend: resize",
		"backend", r.Name(),
		"src", img.Bounds().Size(),
		"width", width, "height", height,
		"filter", f)
	return r.Resize(img, width, height, f)
}
