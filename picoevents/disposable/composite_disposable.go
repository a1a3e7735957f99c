package disposable

// CompositeDisposable owns a sequence of disposables, possibly of unrelated
// concrete types, and disposes them together.
type CompositeDisposable struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposable {
	c := &CompositeDisposable{}
	c.delegates = append(c.delegates, delegates...)
	return c
}

// Add takes ownership of d.
func (c *CompositeDisposable) Add(d Disposable) {
	c.delegates = append(c.delegates, d)
}

// Remove disposes d and forgets it. Disposables not owned by c are ignored.
func (c *CompositeDisposable) Remove(d Disposable) bool {
	for i, delegate := range c.delegates {
		if delegate == d {
			c.delegates = append(c.delegates[:i], c.delegates[i+1:]...)
			delegate.Dispose()
			return true
		}
	}
	return false
}

// Contains reports whether d is owned by c.
func (c *CompositeDisposable) Contains(d Disposable) bool {
	for _, delegate := range c.delegates {
		if delegate == d {
			return true
		}
	}
	return false
}

func (c *CompositeDisposable) Len() int {
	return len(c.delegates)
}

// Dispose disposes every owned delegate. The list is detached first, so
// delegates that reach back into c during their own teardown see it empty.
func (c *CompositeDisposable) Dispose() {
	delegates := c.delegates
	c.delegates = nil
	for _, delegate := range delegates {
		delegate.Dispose()
	}
}
