package repositories

import "errors"

// Store errors are classified here, once, into exactly three kinds. Anything
// that is not one of these sentinels is an unexpected failure and maps to a
// 500 upstream.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
