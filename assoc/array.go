// Package assoc provides AssociativeArray, a key/value container backed by a
// flat array of entries.
//
// Lookups scan the live entries in order, so every keyed operation is O(n).
// Removal moves the last entry into the freed slot, so entry order only
// reflects insertion order until the first Remove.
//
//	a := assoc.New[string, int]()
//	_ = a.Set("x", 1)
//	v, err := a.Get("x")
//
// An AssociativeArray is not safe for concurrent use.
package assoc

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/tailored-agentic-units/structures/observability"
)

// DefaultCapacity is the number of entry slots allocated by New.
const DefaultCapacity = 16

// AssociativeArray maps keys of type K to values of type V. The zero value
// is an empty container ready for use.
type AssociativeArray[K comparable, V any] struct {
	entries  []Entry[K, V] // len(entries) is the capacity
	size     int
	observer observability.Observer
}

// New creates an empty AssociativeArray with DefaultCapacity slots.
func New[K comparable, V any](opts ...Option) *AssociativeArray[K, V] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 1 {
		o.capacity = DefaultCapacity
	}

	return &AssociativeArray[K, V]{
		entries:  make([]Entry[K, V], o.capacity),
		observer: o.observer,
	}
}

// Set associates value with key, overwriting the value of an existing equal
// key in place. A null key is rejected with ErrNullKey and leaves the
// container unchanged.
func (a *AssociativeArray[K, V]) Set(key K, value V) error {
	if isNull(key) {
		a.emit(EventNullKey, observability.LevelWarning, map[string]any{"size": a.size})
		return ErrNullKey
	}

	if i, ok := a.find(key); ok {
		a.entries[i].Value = value
		return nil
	}

	if a.size == len(a.entries) {
		a.expand()
	}
	a.entries[a.size] = Entry[K, V]{Key: key, Value: value}
	a.size++
	return nil
}

// Get returns the value associated with key. A null or absent key yields an
// error wrapping ErrKeyNotFound.
func (a *AssociativeArray[K, V]) Get(key K) (V, error) {
	i, ok := a.find(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return a.entries[i].Value, nil
}

// HasKey reports whether key is present. It is always false for a null key.
func (a *AssociativeArray[K, V]) HasKey(key K) bool {
	if isNull(key) {
		return false
	}
	_, ok := a.find(key)
	return ok
}

// Remove deletes key and its value. The last entry takes over the removed
// entry's slot. Removing an absent or null key does nothing.
func (a *AssociativeArray[K, V]) Remove(key K) {
	i, ok := a.find(key)
	if !ok {
		return
	}

	last := a.size - 1
	a.entries[i] = a.entries[last]
	a.entries[last] = Entry[K, V]{}
	a.size--
}

// Size returns the number of entries.
func (a *AssociativeArray[K, V]) Size() int {
	return a.size
}

// Cap returns the number of allocated entry slots.
func (a *AssociativeArray[K, V]) Cap() int {
	return len(a.entries)
}

// Clone returns an independent copy with the same entries in the same order.
// Values that implement Clone() V are cloned through it. Other values,
// and all keys, are copied by assignment. The copy shares a's observer.
func (a *AssociativeArray[K, V]) Clone() *AssociativeArray[K, V] {
	if a == nil {
		return nil
	}

	c := &AssociativeArray[K, V]{
		entries:  make([]Entry[K, V], len(a.entries)),
		size:     a.size,
		observer: a.observer,
	}
	for i, e := range a.entries[:a.size] {
		c.entries[i] = Entry[K, V]{Key: e.Key, Value: cloneValue(e.Value)}
	}
	return c
}

// String renders the entries as "{ k1: v1, k2: v2 }", or "{}" when empty.
// Keys and values are formatted with %v.
func (a *AssociativeArray[K, V]) String() string {
	if a.size == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{ ")
	for i, e := range a.entries[:a.size] {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", e.Key, e.Value)
	}
	b.WriteString(" }")
	return b.String()
}

// expand doubles the capacity, keeping every entry at its index.
func (a *AssociativeArray[K, V]) expand() {
	capacity := 2 * len(a.entries)
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	grown := make([]Entry[K, V], capacity)
	copy(grown, a.entries[:a.size])

	a.emit(EventGrow, observability.LevelVerbose, map[string]any{
		"from": len(a.entries),
		"to":   capacity,
	})
	a.entries = grown
}

// find returns the index of the first live entry whose key equals key.
func (a *AssociativeArray[K, V]) find(key K) (int, bool) {
	if isNull(key) {
		return -1, false
	}
	for i := 0; i < a.size; i++ {
		if a.entries[i].Key == key {
			return i, true
		}
	}
	return -1, false
}

func (a *AssociativeArray[K, V]) emit(typ observability.EventType, level observability.Level, data map[string]any) {
	if a.observer == nil {
		return
	}
	a.observer.OnEvent(context.Background(), observability.Event{
		Type:   typ,
		Level:  level,
		Source: eventSource,
		Data:   data,
	})
}

// isNull reports whether key is nil, or a nil pointer, channel, map, slice
// or func held in K.
func isNull[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func cloneValue[V any](v V) V {
	if c, ok := any(v).(interface{ Clone() V }); ok {
		return c.Clone()
	}
	return v
}
