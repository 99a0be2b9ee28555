package assoc

// Entry is a single key/value pair owned by an AssociativeArray.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}
