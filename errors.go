package ttgo

import "errors"

var (
	// ErrClosed is returned when using an engine after Close.
	ErrClosed = errors.New("ttgo: engine is closed")
)
