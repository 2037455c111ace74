package contract

import (
	"strconv"

	"incrementer/sdk"
)

// -----------------------------------------------------------------------------
// Stored Value Codecs
// -----------------------------------------------------------------------------

// encodeU32 stores counters back as decimal strings for the host kv.
func encodeU32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// decodeU32 reads the string counter and defaults to zero, nothing magical here.
func decodeU32(s string) uint32 {
	n, _ := strconv.ParseUint(s, 10, 32)
	return uint32(n)
}

func encodeBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func decodeBool(s string) bool {
	return s == "1"
}

// counter constrains the numeric cell types. Addition on these wraps at the
// type width (the 32-bit counters roll over past MaxUint32), the same
// modular arithmetic the chain's other contracts rely on.
type counter interface {
	~uint32 | ~uint64
}

// -----------------------------------------------------------------------------
// ScalarCell: eager, always-resident value
// -----------------------------------------------------------------------------

// ScalarCell binds one storage key to a live value. It materializes at
// construction, so Get is a plain memory read; Set updates memory, marks the
// cell dirty and flushes straight back to storage.
type ScalarCell[T any] struct {
	key    string
	value  T
	dirty  bool
	encode func(T) string
	decode func(string) T
}

// newScalarCell loads the stored value under key, or persists seed when the
// key is still empty (first construction of the contract).
func newScalarCell[T any](key string, seed T, encode func(T) string, decode func(string) T) *ScalarCell[T] {
	c := &ScalarCell[T]{
		key:    key,
		encode: encode,
		decode: decode,
	}
	if ptr := getState().Get(key); ptr != nil && *ptr != "" {
		c.value = decode(*ptr)
	} else {
		c.value = seed
		c.dirty = true
		c.flush()
	}
	return c
}

func (c *ScalarCell[T]) Get() T {
	return c.value
}

func (c *ScalarCell[T]) Set(v T) {
	c.value = v
	c.dirty = true
	c.flush()
}

// flush persists the value when dirty. The dirty flag is persistence
// bookkeeping only, callers never observe it.
func (c *ScalarCell[T]) flush() {
	if !c.dirty {
		return
	}
	stateSetIfChanged(c.key, c.encode(c.value))
	c.dirty = false
}

// addScalar folds a delta into an eager counter cell.
func addScalar[T counter](c *ScalarCell[T], by T) {
	c.Set(c.Get() + by)
}

// -----------------------------------------------------------------------------
// LazyCell: load deferred until first access
// -----------------------------------------------------------------------------

// LazyCell holds a key and a seed but skips the storage read at construction.
// The first Get or Set materializes the live value (stored value, else the
// seed); once loaded the cell stays loaded and behaves exactly like a
// ScalarCell. A call that never touches the cell never pays the load.
type LazyCell[T any] struct {
	key    string
	seed   T
	value  T
	loaded bool
	dirty  bool
	encode func(T) string
	decode func(string) T
}

func newLazyCell[T any](key string, seed T, encode func(T) string, decode func(string) T) *LazyCell[T] {
	return &LazyCell[T]{
		key:    key,
		seed:   seed,
		encode: encode,
		decode: decode,
	}
}

// load performs the one permitted unloaded->loaded transition. Idempotent,
// never reversed for the cell's lifetime.
func (c *LazyCell[T]) load() {
	if c.loaded {
		return
	}
	if ptr := getState().Get(c.key); ptr != nil && *ptr != "" {
		c.value = c.decode(*ptr)
	} else {
		c.value = c.seed
	}
	c.loaded = true
}

func (c *LazyCell[T]) Get() T {
	c.load()
	return c.value
}

// Set materializes first (discarding the seed) and writes through.
func (c *LazyCell[T]) Set(v T) {
	c.loaded = true
	c.value = v
	c.dirty = true
	c.flush()
}

func (c *LazyCell[T]) flush() {
	if !c.dirty {
		return
	}
	stateSetIfChanged(c.key, c.encode(c.value))
	c.dirty = false
}

// addLazy folds a delta into a lazy counter cell. Get forces the load, so
// the increment pays the storage read exactly once per cell lifetime.
func addLazy[T counter](c *LazyCell[T], by T) {
	c.Set(c.Get() + by)
}

// -----------------------------------------------------------------------------
// CounterMap: per-account counters, absent reads as zero
// -----------------------------------------------------------------------------

// CounterMap maps an account to a uint32 counter, one storage entry per
// account. Reading a never-written account yields zero without creating an
// entry, so "absent" and "explicitly zero" are indistinguishable to callers.
type CounterMap struct {
	keyFor func(sdk.Address) string
}

func newCounterMap(keyFor func(sdk.Address) string) *CounterMap {
	return &CounterMap{keyFor: keyFor}
}

// Get returns the stored counter for the account, or zero when absent.
// Never fails and never writes.
func (m *CounterMap) Get(of sdk.Address) uint32 {
	ptr := getState().Get(m.keyFor(of))
	if ptr == nil || *ptr == "" {
		return 0
	}
	return decodeU32(*ptr)
}

// Set inserts or overwrites the account's counter.
func (m *CounterMap) Set(of sdk.Address, value uint32) {
	stateSetIfChanged(m.keyFor(of), encodeU32(value))
}

// Add is a single load-combine-store unit; no intermediate state leaks out
// even on a reentrant call path.
func (m *CounterMap) Add(of sdk.Address, by uint32) {
	m.Set(of, m.Get(of)+by)
}
