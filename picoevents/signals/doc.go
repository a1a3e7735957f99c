// Package signals implements a direct, synchronous multicast channel: one
// SignalImp per kind of event, wired by whoever constructs it. Producers
// call Notify without knowing who listens; observers subscribe with Add and
// keep the returned Handle to unsubscribe.
//
//	clicked := signals.NewSignal[Point]()
//	h := clicked.Add(func(p Point) { fmt.Println("clicked at", p) })
//	clicked.Notify(Point{X: 1, Y: 2})
//	clicked.Remove(&h)
//
// Several arguments travel as one struct, and observers that must mutate
// the argument receive a pointer.
//
// Nothing in this package locks. A signal shared between goroutines needs
// one caller-side lock around every call on it. A Notifier lets one
// goroutine capture an event for another to trigger.
package signals
