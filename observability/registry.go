package observability

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownObserver is returned by GetObserver for unregistered names.
var ErrUnknownObserver = errors.New("unknown observer")

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(nil),
	}
	mu sync.RWMutex
)

// GetObserver looks up a named observer. "noop" and "slog" (slog.Default)
// are always registered unless replaced.
func GetObserver(name string) (Observer, error) {
	mu.RLock()
	defer mu.RUnlock()

	o, ok := observers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObserver, name)
	}
	return o, nil
}

// RegisterObserver adds or replaces the observer stored under name.
func RegisterObserver(name string, o Observer) {
	mu.Lock()
	defer mu.Unlock()

	observers[name] = o
}
