package array

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Implementation describes a registered array backend.
type Implementation struct {
	// Name identifies the backend in diagnostics.
	Name string

	// MinDims is the smallest dimensionality the backend supports.
	MinDims int

	// New builds a zero-filled array of the given shape.
	New func(shape Shape) Array
}

var (
	registryMu sync.RWMutex
	registry   []Implementation
)

// Register announces a backend to the process-wide registry. It is meant
// to be called once per backend from an init function; later Lookup calls
// consult the registered set for generic dispatch.
func Register(impl Implementation) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, impl)
	// Most specific (highest MinDims) first, stable for ties.
	sort.SliceStable(registry, func(i, j int) bool {
		return registry[i].MinDims > registry[j].MinDims
	})
}

// Lookup returns the most specific implementation able to represent
// arrays of the given dimensionality.
func Lookup(dims int) (Implementation, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, impl := range registry {
		if impl.MinDims <= dims {
			return impl, nil
		}
	}
	return Implementation{}, errors.Errorf("no registered implementation supports %d dimensions", dims)
}

// Implementations returns a snapshot of the registered backends, most
// specific first.
func Implementations() []Implementation {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Implementation, len(registry))
	copy(out, registry)
	return out
}
