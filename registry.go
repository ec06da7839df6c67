package tristate

import (
	"reflect"
	"sync"

	"github.com/modern-go/reflect2"
)

// registryKey combines wrapper type and coercion mode for cache lookup.
type registryKey struct {
	rtype  uintptr
	strict bool
}

var (
	registry   = make(map[registryKey]*valueCodec)
	registryMu sync.RWMutex
)

// lookupCodec returns the cached codec for typ or builds a new one.
// It returns nil when typ is not a Value instantiation. The cache is
// intentionally unbounded: its key space is the set of distinct element
// types compiled into the program, which is small and static.
func lookupCodec(typ reflect2.Type, strict bool) *valueCodec {
	key := registryKey{rtype: typ.RType(), strict: strict}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	if !isTriStateType(typ.Type1()) {
		return nil
	}

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached
	}

	c := newValueCodec(typ, strict)
	registry[key] = c
	return c
}

// Handles reports whether rt would be routed through a tri-state codec:
// either a codec for it is already cached or rt is a Value instantiation.
func Handles(rt reflect.Type) bool {
	key := registryKey{rtype: reflect2.Type2(rt).RType()}

	registryMu.RLock()
	_, lenient := registry[key]
	key.strict = true
	_, strict := registry[key]
	registryMu.RUnlock()

	return lenient || strict || isTriStateType(rt)
}

// Reset clears the codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]*valueCodec)
}
