package assoc

import "errors"

// Sentinel errors for container operations.
var (
	ErrNullKey       = errors.New("null key")
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvalidConfig = errors.New("invalid config")
)
