package scoped

import "errors"

var ErrEmptyHandle = errors.New("scoped: callback is not subscribed")
