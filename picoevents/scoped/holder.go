package scoped

import (
	"github.com/krew-solutions/picoevents-go/picoevents/disposable"
	"github.com/krew-solutions/picoevents-go/picoevents/signals"
)

// Holder ties any number of subscriptions, on signals of any event type,
// to the lifetime of its owner. The zero value is ready to use.
//
//	type panel struct {
//	    scoped.Holder
//	}
//
//	scoped.AddCallback(&p.Holder, resized, p.onResize)
//	defer p.Dispose()
type Holder struct {
	callbacks disposable.CompositeDisposable
}

func NewHolder() *Holder {
	return &Holder{}
}

// AddCallback subscribes observer to signal and keeps the subscription in h.
// The returned callback stays owned by h; pass it to RemoveCallback to drop
// it early.
func AddCallback[E any](h *Holder, signal signals.Signal[E], observer signals.Observer[E], priority ...signals.Priority) *ScopedCallback[E] {
	callback := NewScopedCallback(signal, observer, priority...)
	h.callbacks.Add(callback)
	return callback
}

// Own takes ownership of any other disposable subscription, such as the
// result of a composite Attach.
func (h *Holder) Own(d disposable.Disposable) {
	h.callbacks.Add(d)
}

// RemoveCallback disposes callback if h owns it.
func (h *Holder) RemoveCallback(callback disposable.Disposable) bool {
	return h.callbacks.Remove(callback)
}

func (h *Holder) RemoveAllCallbacks() {
	h.callbacks.Dispose()
}

func (h *Holder) Len() int {
	return h.callbacks.Len()
}

func (h *Holder) Dispose() {
	h.RemoveAllCallbacks()
}
