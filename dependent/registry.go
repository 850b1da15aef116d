package dependent

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/logger"
	"github.com/amp-labs/amp-dependent/optional"
)

// Registry is a named collection of conversions, looked up by the caller naming
// the target kind and payload. Each (source kind, target kind, payload types)
// combination can be registered once. A Registry is safe for concurrent use; it is
// meant to be filled at start-up and read afterwards.
type Registry struct {
	mutex       sync.RWMutex
	conversions map[reflect.Type]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conversions: make(map[reflect.Type]any),
	}
}

// Register adds c to r. Registering the same combination twice returns an error
// wrapping errors.ErrConversionExists and keeps the first adapter.
func Register[KA, KB, Mid, Out any](r *Registry, c Conversion[KA, KB, Mid, Out]) error {
	key := reflect.TypeFor[Conversion[KA, KB, Mid, Out]]()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, found := r.conversions[key]; found {
		return fmt.Errorf("%w: %s", errors.ErrConversionExists, c)
	}

	r.conversions[key] = c

	logger.Get().Debug("registered conversion", "conversion", c.String())

	return nil
}

// Lookup returns the adapter from KA to KB, if one was registered.
func Lookup[KA, KB, Mid, Out any](r *Registry) optional.Value[Conversion[KA, KB, Mid, Out]] {
	key := reflect.TypeFor[Conversion[KA, KB, Mid, Out]]()

	r.mutex.RLock()
	entry, found := r.conversions[key]
	r.mutex.RUnlock()

	if !found {
		return optional.None[Conversion[KA, KB, Mid, Out]]()
	}

	c, ok := entry.(Conversion[KA, KB, Mid, Out])

	return optional.FromPair(c, ok)
}

// ConvertVia converts w into kind KB with the registered adapter. The caller names
// the target; the source is inferred from w:
//
//	polar, err := dependent.ConvertVia[kinds.PolarInt, kinds.Polar](registry, signed)
//
// A missing adapter is an error wrapping errors.ErrNoConversion. A rejection by
// the target validator is not an error: the result is simply None.
func ConvertVia[KB, Out, KA, Mid any](r *Registry, w Type[KA, Mid]) (optional.Value[Type[KB, Out]], error) {
	c, ok := Lookup[KA, KB, Mid, Out](r).Get()
	if !ok {
		return optional.None[Type[KB, Out]](), fmt.Errorf("%w: %s -> %s",
			errors.ErrNoConversion, kindName[KA](), kindName[KB]())
	}

	return c.Convert(w), nil
}

// Len returns the number of registered conversions.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.conversions)
}
