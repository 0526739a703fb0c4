package set

// Column is a partial finite map from keys to values, used for structure
// maps such as source/target assignments and composition tables.
//
// The zero value is an empty column ready for use. Absence of a key is a
// normal outcome, reported through the ok result of Get, not an error.
type Column[K comparable, V any] struct {
	m map[K]V
}

// NewColumn creates an empty column.
func NewColumn[K comparable, V any]() Column[K, V] {
	return Column[K, V]{}
}

// Set assigns a value to a key, overwriting any previous assignment.
func (c *Column[K, V]) Set(k K, v V) {
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = v
}

// Get looks up the value assigned to a key.
func (c Column[K, V]) Get(k K) (V, bool) {
	v, ok := c.m[k]
	return v, ok
}

// Has reports whether the key has an assigned value.
func (c Column[K, V]) Has(k K) bool {
	_, ok := c.m[k]
	return ok
}

// Len returns the number of assigned keys.
func (c Column[K, V]) Len() int {
	return len(c.m)
}

// Pair is an ordered pair of comparable values, usable as a column key for
// binary tables such as composition maps.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// PairOf constructs an ordered pair.
func PairOf[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
