package signals

// Notifier is an event captured now and dispatched later, possibly from
// another goroutine. The event is stored by value: reassigning the
// variables it was built from has no effect on it. Events holding pointers,
// slices or maps still share what those refer to.
type Notifier[E any] struct {
	target Emitter[E]
	event  E
}

func NewNotifier[E any](target Emitter[E], event E) Notifier[E] {
	return Notifier[E]{target: target, event: event}
}

func (n Notifier[E]) Event() E {
	return n.event
}

// Trigger dispatches the captured event. Every call is a full dispatch.
func (n Notifier[E]) Trigger() {
	n.target.Notify(n.event)
}

// ScopedNotifier triggers its Notifier exactly once, on the first Close.
//
//	sn := signals.NewScopedNotifier(s.MakeNotifier(done))
//	defer sn.Close()
type ScopedNotifier[E any] struct {
	notifier Notifier[E]
	fired    bool
}

func NewScopedNotifier[E any](notifier Notifier[E]) *ScopedNotifier[E] {
	return &ScopedNotifier[E]{notifier: notifier}
}

func (sn *ScopedNotifier[E]) Close() {
	if sn.fired {
		return
	}
	sn.fired = true
	sn.notifier.Trigger()
}
