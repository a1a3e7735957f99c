package disposable

type DisposableImp struct {
	callback func()
}

// NewDisposable wraps callback so that it runs on the first Dispose only.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.callback == nil {
		return
	}
	callback := d.callback
	d.callback = nil
	callback()
}

func (d *DisposableImp) IsDisposed() bool {
	return d.callback == nil
}
