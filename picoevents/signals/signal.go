package signals

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/picoevents-go/picoevents/disposable"
)

type entry[E any] struct {
	id       uint64
	observer Observer[E]
	prev     *entry[E]
	next     *entry[E]
	removed  bool
}

// SignalImp is a synchronous multicast channel for events of type E.
//
// Observers run in sequence order: each Front observer ahead of everything
// registered before it, Back observers in registration order after them.
// An observer may add or remove any subscription, including its own, while
// the signal is dispatching. Removed entries are skipped if not visited yet.
// Observers added during a dispatch are first invoked by the next one.
// Every dispatch keeps its own cursor, so Notify may be re-entered from an
// observer.
//
// SignalImp does no locking. Callers sharing one signal between goroutines
// must serialize every call on it.
type SignalImp[E any] struct {
	id        uuid.UUID
	name      string
	log       *slog.Logger
	head      *entry[E]
	tail      *entry[E]
	entries   map[uint64]*entry[E]
	lastID    uint64
	enabled   bool
	depth     int
	graveyard []*entry[E]
}

func NewSignal[E any](opts ...Option) *SignalImp[E] {
	o := resolveOptions(opts)
	s := &SignalImp[E]{
		id:      uuid.New(),
		name:    o.name,
		log:     o.log,
		entries: make(map[uint64]*entry[E]),
		enabled: true,
	}
	if s.name == "" {
		s.name = s.id.String()
	}
	return s
}

func (s *SignalImp[E]) ID() uuid.UUID {
	return s.id
}

func (s *SignalImp[E]) Name() string {
	return s.name
}

func (s *SignalImp[E]) SetEnabled(enabled bool) {
	s.enabled = enabled
}

func (s *SignalImp[E]) IsEnabled() bool {
	return s.enabled
}

// Len returns the number of live subscriptions.
func (s *SignalImp[E]) Len() int {
	return len(s.entries)
}

func (s *SignalImp[E]) Add(observer Observer[E], priority ...Priority) Handle {
	s.lastID++
	e := &entry[E]{id: s.lastID, observer: observer}
	if resolvePriority(priority) == Front {
		e.next = s.head
		if s.head != nil {
			s.head.prev = e
		} else {
			s.tail = e
		}
		s.head = e
	} else {
		e.prev = s.tail
		if s.tail != nil {
			s.tail.next = e
		} else {
			s.head = e
		}
		s.tail = e
	}
	s.entries[e.id] = e
	return Handle{signal: s.id, id: e.id}
}

// Remove unsubscribes the observer behind handle and empties handle.
// Empty and stale handles are ignored.
func (s *SignalImp[E]) Remove(handle *Handle) {
	if handle == nil || handle.IsEmpty() {
		return
	}
	s.checkOwnership(*handle)
	if e, ok := s.entries[handle.id]; ok {
		delete(s.entries, e.id)
		e.removed = true
		e.observer = nil
		if s.depth > 0 {
			s.graveyard = append(s.graveyard, e)
		} else {
			s.unlink(e)
		}
	}
	*handle = Handle{}
}

// Replace swaps the observer behind handle, keeping its position.
func (s *SignalImp[E]) Replace(handle Handle, observer Observer[E]) bool {
	if handle.IsEmpty() {
		return false
	}
	s.checkOwnership(handle)
	e, ok := s.entries[handle.id]
	if !ok {
		return false
	}
	e.observer = observer
	return true
}

func (s *SignalImp[E]) Lookup(handle Handle) (Observer[E], bool) {
	if handle.IsEmpty() {
		return nil, false
	}
	s.checkOwnership(handle)
	e, ok := s.entries[handle.id]
	if !ok {
		return nil, false
	}
	return e.observer, true
}

// Attach subscribes observer and returns a Disposable that removes it.
func (s *SignalImp[E]) Attach(observer Observer[E], priority ...Priority) disposable.Disposable {
	handle := s.Add(observer, priority...)
	return disposable.NewDisposable(func() {
		s.Remove(&handle)
	})
}

// Notify invokes every observer with event. It does nothing while the
// signal is disabled. A panicking observer aborts the dispatch and the
// panic reaches the caller as is.
func (s *SignalImp[E]) Notify(event E) {
	if !s.enabled {
		return
	}
	limit := s.beginDispatch()
	defer s.endDispatch()
	for e := s.head; e != nil; e = e.next {
		if e.removed || e.id > limit {
			continue
		}
		e.observer(event)
	}
}

// TryNotify is Notify that survives panicking observers: each panic is
// recovered and logged, dispatch goes on, and the recovered panics are
// returned together as a *multierror.Error.
func (s *SignalImp[E]) TryNotify(event E) error {
	if !s.enabled {
		return nil
	}
	limit := s.beginDispatch()
	defer s.endDispatch()
	var result error
	for e := s.head; e != nil; e = e.next {
		if e.removed || e.id > limit {
			continue
		}
		if err := s.invokeGuarded(e, event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// MakeNotifier captures event for a later Trigger.
func (s *SignalImp[E]) MakeNotifier(event E) Notifier[E] {
	return NewNotifier[E](s, event)
}

func (s *SignalImp[E]) invokeGuarded(e *entry[E], event E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("Observer panicked", "signal", s.name, "handle", e.id, "panic", r)
			err = errors.Wrapf(ErrObserverPanicked, "signal %s, handle %d: %v", s.name, e.id, r)
		}
	}()
	e.observer(event)
	return nil
}

func (s *SignalImp[E]) beginDispatch() uint64 {
	s.depth++
	if s.depth > 1 {
		s.log.Debug("Nested dispatch", "signal", s.name, "depth", s.depth)
	}
	return s.lastID
}

func (s *SignalImp[E]) endDispatch() {
	s.depth--
	if s.depth > 0 {
		return
	}
	for _, e := range s.graveyard {
		s.unlink(e)
	}
	clear(s.graveyard)
	s.graveyard = s.graveyard[:0]
}

func (s *SignalImp[E]) unlink(e *entry[E]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (s *SignalImp[E]) checkOwnership(handle Handle) {
	if handle.signal != s.id {
		panic(errors.Wrapf(ErrForeignHandle, "signal %s got handle %s", s.name, handle))
	}
}
