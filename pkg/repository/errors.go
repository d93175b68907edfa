package repository

import "errors"

// ErrNotFound is returned by every backend when a requested document does
// not exist in its collection.
var ErrNotFound = errors.New("document not found")
