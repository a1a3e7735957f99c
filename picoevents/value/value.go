package value

import (
	"github.com/krew-solutions/picoevents-go/picoevents/scoped"
	"github.com/krew-solutions/picoevents-go/picoevents/signals"
)

// Value holds a T and notifies its listeners with the new value on every
// Set, including a Set to the value already held.
//
// Listeners added through AddListener live as long as the Value: Dispose
// removes them before the signal is released. Observers added straight to
// Signal() are not tracked and must be removed by whoever added them.
type Value[T any] struct {
	scoped.Holder
	value  T
	signal *signals.SignalImp[T]
}

func NewValue[T any](initial T, opts ...signals.Option) *Value[T] {
	return &Value[T]{
		value:  initial,
		signal: signals.NewSignal[T](opts...),
	}
}

func (v *Value[T]) Get() T {
	return v.value
}

func (v *Value[T]) Set(value T) {
	v.value = value
	v.Notify()
}

// Update replaces the value with transform applied to it.
func (v *Value[T]) Update(transform func(T) T) {
	v.Set(transform(v.value))
}

// Notify dispatches the current value without changing it.
func (v *Value[T]) Notify() {
	if v.signal == nil {
		return
	}
	v.signal.Notify(v.value)
}

// Signal returns the underlying signal, or nil once disposed.
func (v *Value[T]) Signal() *signals.SignalImp[T] {
	return v.signal
}

func (v *Value[T]) AddListener(observer signals.Observer[T], priority ...signals.Priority) *scoped.ScopedCallback[T] {
	if v.signal == nil {
		panic(ErrValueDisposed)
	}
	return scoped.AddCallback[T](&v.Holder, v.signal, observer, priority...)
}

func (v *Value[T]) IsDisposed() bool {
	return v.signal == nil
}

// Dispose removes every listener, then releases the signal. Afterwards Set
// only stores the value.
func (v *Value[T]) Dispose() {
	if v.signal == nil {
		return
	}
	v.Holder.RemoveAllCallbacks()
	v.signal = nil
}
