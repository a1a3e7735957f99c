package signals

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeSignal_AttachPropagatesToAllDelegates(t *testing.T) {
	s1 := NewSignal[sampleEvent]()
	s2 := NewSignal[sampleEvent]()
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	callCount := 0
	composite.Attach(func(e sampleEvent) { callCount++ })
	s1.Notify(sampleEvent{1})
	s2.Notify(sampleEvent{1})
	assert.Equal(t, 2, callCount)
}

func TestCompositeSignal_NotifyPropagatesToAllDelegates(t *testing.T) {
	s1 := NewSignal[sampleEvent]()
	s2 := NewSignal[sampleEvent]()
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	callCount := 0
	composite.Attach(func(e sampleEvent) { callCount++ })
	composite.Notify(sampleEvent{1})
	assert.Equal(t, 2, callCount)
}

func TestCompositeSignal_DisposableDetachesFromAllDelegates(t *testing.T) {
	s1 := NewSignal[sampleEvent]()
	s2 := NewSignal[sampleEvent]()
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	called := false
	d := composite.Attach(func(e sampleEvent) { called = true })
	d.Dispose()
	s1.Notify(sampleEvent{1})
	s2.Notify(sampleEvent{1})
	assert.False(t, called)
	assert.Equal(t, 0, s1.Len())
	assert.Equal(t, 0, s2.Len())
}

func TestCompositeSignal_AttachFront(t *testing.T) {
	s1 := NewSignal[int]()
	composite := NewCompositeSignal[int](s1)
	var calls []string
	s1.Add(func(int) { calls = append(calls, "direct") })
	composite.Attach(func(int) { calls = append(calls, "composite") }, Front)
	composite.Notify(0)
	assert.Equal(t, []string{"composite", "direct"}, calls)
}

func TestCompositeSignal_NotifyNoDelegates(t *testing.T) {
	composite := NewCompositeSignal[sampleEvent]()
	composite.Notify(sampleEvent{1}) // should not panic
	assert.NoError(t, composite.TryNotify(sampleEvent{1}))
}

func TestCompositeSignal_SetEnabled(t *testing.T) {
	s1 := NewSignal[int]()
	s2 := NewSignal[int]()
	composite := NewCompositeSignal[int](s1, s2)
	composite.SetEnabled(false)
	assert.False(t, s1.IsEnabled())
	assert.False(t, s2.IsEnabled())
	composite.SetEnabled(true)
	assert.True(t, s1.IsEnabled())
	assert.True(t, s2.IsEnabled())
}

func TestCompositeSignal_TryNotifyCollectsErrors(t *testing.T) {
	s1 := NewSignal[sampleEvent]()
	s2 := NewSignal[sampleEvent]()
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	composite.Attach(func(e sampleEvent) { panic("fail") })
	err := composite.TryNotify(sampleEvent{1})

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, err, ErrObserverPanicked)
}

func TestCompositeSignal_NotifierTargetsComposite(t *testing.T) {
	s1 := NewSignal[int]()
	s2 := NewSignal[int]()
	var got []int
	s1.Add(func(v int) { got = append(got, v) })
	s2.Add(func(v int) { got = append(got, -v) })
	NewNotifier[int](NewCompositeSignal[int](s1, s2), 5).Trigger()
	assert.Equal(t, []int{5, -5}, got)
}
