package firestore

import "github.com/taskdeck-io/taskdeck/pkg/repository"

// ErrNotFound is shared with the memory backend so the usecase layer can
// match on one sentinel regardless of backend.
var ErrNotFound = repository.ErrNotFound
