package repository

import "errors"

// ErrDuplicateKey is returned by Create/Update when a unique constraint rejects the row.
var ErrDuplicateKey = errors.New("duplicate key")
