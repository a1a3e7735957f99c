package value

import "errors"

var ErrValueDisposed = errors.New("value: disposed")
