package reconciler

import "errors"

var ErrClosed = errors.New("reconciler closed")
