// Package callcount provides an explicit call counter and a counted-function
// wrapper.
//
// The counter is an ordinary value handed around by the caller — there is no
// registry and no package-level state — and is safe for concurrent use.
package callcount

import "sync/atomic"

// Counter counts invocations under a name.
type Counter struct {
	name string
	n    atomic.Uint64
}

// New creates a counter with the given name.
func New(name string) *Counter {
	return &Counter{name: name}
}

// Name returns the counter's name.
func (c *Counter) Name() string {
	return c.name
}

// Invoke records one call and returns the updated count.
func (c *Counter) Invoke() uint64 {
	return c.n.Add(1)
}

// Count returns the number of calls recorded so far.
func (c *Counter) Count() uint64 {
	return c.n.Load()
}

// Wrap returns a function that records one call on c before delegating to
// fn. fn must be non-nil.
func Wrap[A, R any](c *Counter, fn func(A) R) func(A) R {
	return func(a A) R {
		c.Invoke()

		return fn(a)
	}
}
