package model

import "errors"

// ErrNotFound is returned by stores when the requested id has no document.
var ErrNotFound = errors.New("document not found")
