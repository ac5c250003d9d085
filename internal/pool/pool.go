// Package pool provides typed object pooling for snapflag scratch buffers.
// Used by the flag set for the name slices built while sorting and suggesting.
package pool

import "sync"

// Pool is a generic, type-safe wrapper around sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools string slices, handing them out with zero length.
type StringSlicePool struct {
	*Pool[[]string]
	maxCap int
}

// NewStringSlicePool creates a string slice pool. Slices that grew beyond
// maxCap are dropped on Put instead of being retained.
func NewStringSlicePool(defaultCap, maxCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				clear(*slice)
				*slice = (*slice)[:0] // Reset length but keep capacity
			},
		),
		maxCap: maxCap,
	}
}

// Put returns slice to the pool unless it is oversized.
func (p *StringSlicePool) Put(slice *[]string) {
	if slice == nil || (p.maxCap > 0 && cap(*slice) > p.maxCap) {
		return
	}
	p.Pool.Put(slice)
}

// Names is the shared pool for flag-name scratch slices.
var Names = NewStringSlicePool(16, 1024)

// GetStringSlice retrieves an empty string slice from Names
func GetStringSlice() *[]string {
	return Names.Get()
}

// PutStringSlice returns a string slice to Names
func PutStringSlice(slice *[]string) {
	Names.Put(slice)
}
