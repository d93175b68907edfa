package memory

import "github.com/taskdeck-io/taskdeck/pkg/repository"

// ErrNotFound is re-exported so callers matching against the memory
// backend see the same sentinel as the firestore backend.
var ErrNotFound = repository.ErrNotFound
