package signals

import "errors"

var (
	ErrForeignHandle    = errors.New("signals: handle issued by another signal")
	ErrObserverPanicked = errors.New("signals: observer panicked")
)
