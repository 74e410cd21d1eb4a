package repositories

import "errors"

// ErrNotFound is wrapped by every repository method that could not find the requested row.
var ErrNotFound = errors.New("record not found")
