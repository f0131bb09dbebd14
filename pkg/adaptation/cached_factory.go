package adaptation

import (
	"runtime"
	"sync"
	"unsafe"
	"weak"

	"adaptctl/pkg/logging"
)

// CachedFactory memoizes one adapter per adaptee. Entries hold neither the
// adaptee nor the adapter alive: both are referenced weakly, and an entry is
// evicted once its adaptee has been collected. An adapter collected while
// its adaptee is still alive is simply rebuilt on the next call.
//
// Adaptees that are not heap objects, such as package-level variables, live
// for the whole program and their adapters are held strongly. Zero-size
// adaptees have no identity and are never cached.
type CachedFactory[A, V any] struct {
	inner func() (func(*A) (*V, error), error)

	mu      sync.Mutex
	entries map[weak.Pointer[A]]weak.Pointer[V]
	// tracked holds one cleanup registration per live heap adaptee, keyed by
	// address. An address may be reused once its adaptee is collected.
	tracked map[uintptr]*tracker[A]
	static  map[*A]*V
}

// tracker is the argument of an adaptee's cleanup.
type tracker[A any] struct {
	addr uintptr
	key  weak.Pointer[A]
}

// NewCachedFactory wraps inner with a per-adaptee cache.
func NewCachedFactory[A, V any](inner func(*A) (*V, error)) *CachedFactory[A, V] {
	return NewLazyCachedFactory(func() (func(*A) (*V, error), error) {
		return inner, nil
	})
}

// NewLazyCachedFactory is like NewCachedFactory, but the inner factory is
// obtained from resolve on first use. resolve runs at most once.
func NewLazyCachedFactory[A, V any](resolve func() (func(*A) (*V, error), error)) *CachedFactory[A, V] {
	return &CachedFactory[A, V]{
		inner:   sync.OnceValues(resolve),
		entries: make(map[weak.Pointer[A]]weak.Pointer[V]),
		tracked: make(map[uintptr]*tracker[A]),
		static:  make(map[*A]*V),
	}
}

// Adapt returns the cached adapter for adaptee, building it if needed. A nil
// adapter from the inner factory is returned as is and not cached.
func (c *CachedFactory[A, V]) Adapt(adaptee *A) (*V, error) {
	var zero A
	if unsafe.Sizeof(zero) == 0 {
		// Distinct zero-size values may share an address.
		return c.build(adaptee)
	}

	c.mu.Lock()
	if v, ok := c.static[adaptee]; ok {
		c.mu.Unlock()
		return v, nil
	}
	key, onHeap := c.trackLocked(adaptee)
	if onHeap {
		if cached, ok := c.entries[key]; ok {
			if v := cached.Value(); v != nil {
				c.mu.Unlock()
				return v, nil
			}
			// The adapter was collected; treat as a miss.
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()

	v, err := c.build(adaptee)
	if err != nil || v == nil {
		return v, err
	}

	c.mu.Lock()
	if onHeap {
		c.entries[key] = weak.Make(v)
	} else if existing, ok := c.static[adaptee]; ok {
		v = existing
	} else {
		c.static[adaptee] = v
	}
	c.mu.Unlock()

	logging.Debug("CachedFactory", "Cached adapter %T for adaptee %T", v, adaptee)
	return v, nil
}

func (c *CachedFactory[A, V]) build(adaptee *A) (*V, error) {
	inner, err := c.inner()
	if err != nil {
		return nil, err
	}
	return inner(adaptee)
}

// trackLocked returns the weak key of adaptee, registering a cleanup the
// first time a live adaptee is seen. It reports false for adaptees outside
// the heap, on which the runtime registers no cleanup and weak pointers
// cannot be made. c.mu must be held.
func (c *CachedFactory[A, V]) trackLocked(adaptee *A) (weak.Pointer[A], bool) {
	addr := uintptr(unsafe.Pointer(adaptee))
	if t, ok := c.tracked[addr]; ok && t.key.Value() == adaptee {
		return t.key, true
	}

	t := &tracker[A]{addr: addr}
	if runtime.AddCleanup(adaptee, c.evict, t) == (runtime.Cleanup{}) {
		return weak.Pointer[A]{}, false
	}
	t.key = weak.Make(adaptee)
	c.tracked[addr] = t
	return t.key, true
}

// Factory exposes the cache as an adaptation Factory. Adaptees that are not
// a *A are declined.
func (c *CachedFactory[A, V]) Factory() Factory {
	return func(adaptee any) (Result, error) {
		a, ok := adaptee.(*A)
		if !ok || a == nil {
			return NotApplicable(), nil
		}
		v, err := c.Adapt(a)
		if err != nil {
			return NotApplicable(), err
		}
		if v == nil {
			return NotApplicable(), nil
		}
		return Found(v), nil
	}
}

// Len returns the number of entries whose adaptee and adapter are both alive.
func (c *CachedFactory[A, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := len(c.static)
	for k, v := range c.entries {
		if k.Value() != nil && v.Value() != nil {
			live++
		}
	}
	return live
}

// IsEmpty reports whether no live entries remain.
func (c *CachedFactory[A, V]) IsEmpty() bool {
	return c.Len() == 0
}

func (c *CachedFactory[A, V]) evict(t *tracker[A]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, t.key)
	if c.tracked[t.addr] == t {
		delete(c.tracked, t.addr)
	}
}
