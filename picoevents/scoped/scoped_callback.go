package scoped

import (
	"github.com/krew-solutions/picoevents-go/picoevents/signals"
)

// ScopedCallback owns exactly one subscription and removes it on Dispose.
// Ownership moves with Move; the source is left empty.
type ScopedCallback[E any] struct {
	signal signals.Signal[E]
	handle signals.Handle
}

func NewScopedCallback[E any](signal signals.Signal[E], observer signals.Observer[E], priority ...signals.Priority) *ScopedCallback[E] {
	return &ScopedCallback[E]{
		signal: signal,
		handle: signal.Add(observer, priority...),
	}
}

func (c *ScopedCallback[E]) Signal() signals.Signal[E] {
	return c.signal
}

func (c *ScopedCallback[E]) Handle() signals.Handle {
	return c.handle
}

func (c *ScopedCallback[E]) IsEmpty() bool {
	return c.handle.IsEmpty()
}

// Move transfers the subscription to a new owner.
func (c *ScopedCallback[E]) Move() *ScopedCallback[E] {
	moved := &ScopedCallback[E]{signal: c.signal, handle: c.handle}
	c.handle = signals.Handle{}
	return moved
}

// Replace unsubscribes from the current signal and subscribes observer to
// signal instead.
func (c *ScopedCallback[E]) Replace(signal signals.Signal[E], observer signals.Observer[E], priority ...signals.Priority) {
	c.signal.Remove(&c.handle)
	c.signal = signal
	c.handle = signal.Add(observer, priority...)
}

// Invoke calls the owned observer directly, bypassing dispatch.
func (c *ScopedCallback[E]) Invoke(event E) error {
	observer, ok := c.signal.Lookup(c.handle)
	if !ok {
		return ErrEmptyHandle
	}
	observer(event)
	return nil
}

func (c *ScopedCallback[E]) Dispose() {
	c.signal.Remove(&c.handle)
}
