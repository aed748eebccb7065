package device

import "errors"

// ErrUnknownCategory is returned by ParseCategory for hints outside the known set.
var ErrUnknownCategory = errors.New("unknown device category")
