package signals

import (
	"github.com/krew-solutions/picoevents-go/picoevents/disposable"
)

type Observer[E any] func(E)

// Priority selects where Add places a new observer. Front observers run
// before every observer already registered.
type Priority int

const (
	Back Priority = iota
	Front
)

type Emitter[E any] interface {
	Notify(event E)
}

type Toggle interface {
	SetEnabled(enabled bool)
	IsEnabled() bool
}

type Signal[E any] interface {
	Emitter[E]
	Toggle
	Add(observer Observer[E], priority ...Priority) Handle
	Remove(handle *Handle)
	Replace(handle Handle, observer Observer[E]) bool
	Lookup(handle Handle) (Observer[E], bool)
	Attach(observer Observer[E], priority ...Priority) disposable.Disposable
	TryNotify(event E) error
	Len() int
}
