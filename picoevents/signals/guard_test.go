package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisableGuard_DisablesUntilRestore(t *testing.T) {
	s := NewSignal[int]()
	callCount := 0
	s.Add(func(int) { callCount++ })

	func() {
		defer Disable(s).Restore()
		assert.False(t, s.IsEnabled())
		s.Notify(1)
	}()
	assert.True(t, s.IsEnabled())
	assert.Equal(t, 0, callCount)

	s.Notify(1)
	assert.Equal(t, 1, callCount)
}

func TestDisableGuard_Nesting(t *testing.T) {
	for _, initial := range []bool{true, false} {
		s := NewSignal[int]()
		s.SetEnabled(initial)
		outer := Disable(s)
		inner := Disable(s)
		assert.False(t, s.IsEnabled())
		inner.Restore()
		assert.False(t, s.IsEnabled())
		outer.Restore()
		assert.Equal(t, initial, s.IsEnabled())
	}
}

func TestDisableGuard_RestoreTwiceIsSilent(t *testing.T) {
	s := NewSignal[int]()
	g := Disable(s)
	g.Restore()
	s.SetEnabled(false)
	g.Restore()
	assert.False(t, s.IsEnabled())
}

func TestDisableGuard_RestoresOnPanic(t *testing.T) {
	s := NewSignal[int]()
	assert.Panics(t, func() {
		defer Disable(s).Restore()
		panic("unwind")
	})
	assert.True(t, s.IsEnabled())
}
