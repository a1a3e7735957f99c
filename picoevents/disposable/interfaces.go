package disposable

// Disposable releases whatever it holds. Dispose must be safe to call more
// than once; only the first call has an effect.
type Disposable interface {
	Dispose()
}
