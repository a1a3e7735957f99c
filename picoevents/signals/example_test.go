package signals_test

import (
	"fmt"

	"github.com/krew-solutions/picoevents-go/picoevents/signals"
)

func Example() {
	buttonStateChanged := signals.NewSignal[bool](signals.WithName("buttonStateChanged"))

	buttonState := false
	buttonStateChanged.Add(func(v bool) { buttonState = v })
	buttonStateChanged.Add(func(v bool) { fmt.Println("button is now", v) })

	buttonStateChanged.Notify(true)
	fmt.Println("stored state:", buttonState)
	// Output:
	// button is now true
	// stored state: true
}

func ExampleSignalImp_MakeNotifier() {
	type progress struct {
		Step  int
		Label string
	}
	s := signals.NewSignal[progress]()
	s.Add(func(p progress) { fmt.Printf("%d %s\n", p.Step, p.Label) })

	p := progress{Step: 1, Label: "Delayed notifier"}
	notifier := s.MakeNotifier(p)
	p.Step = 2
	notifier.Trigger()
	// Output:
	// 1 Delayed notifier
}

func ExampleDisable() {
	s := signals.NewSignal[int]()
	s.Add(func(v int) { fmt.Println("got", v) })

	func() {
		defer signals.Disable(s).Restore()
		s.Notify(1)
	}()
	s.Notify(2)
	// Output:
	// got 2
}
