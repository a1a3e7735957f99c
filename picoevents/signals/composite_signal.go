package signals

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/picoevents-go/picoevents/disposable"
)

// CompositeSignalImp fans out to several signals of the same event type.
type CompositeSignalImp[E any] struct {
	delegates []Signal[E]
}

func NewCompositeSignal[E any](delegates ...Signal[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

func (s *CompositeSignalImp[E]) Attach(observer Observer[E], priority ...Priority) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		disposables = append(disposables, delegate.Attach(observer, priority...))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

func (s *CompositeSignalImp[E]) SetEnabled(enabled bool) {
	for _, delegate := range s.delegates {
		delegate.SetEnabled(enabled)
	}
}

func (s *CompositeSignalImp[E]) Notify(event E) {
	for _, delegate := range s.delegates {
		delegate.Notify(event)
	}
}

func (s *CompositeSignalImp[E]) TryNotify(event E) error {
	var result error
	for _, delegate := range s.delegates {
		if err := delegate.TryNotify(event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
