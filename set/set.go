// Package set provides the finite containers backing theory generator
// tables: finite sets of labels and columns (partial finite maps).
//
// Both containers are plain map-backed values. They are mutated only while a
// theory is being constructed; afterwards every access is read-only, so a
// fully built container may be shared between goroutines without locking.
package set

// FinSet is a finite set of comparable elements.
//
// The zero value is an empty set ready for use.
type FinSet[T comparable] struct {
	elems map[T]struct{}
}

// NewFinSet creates a finite set containing the given elements.
func NewFinSet[T comparable](elems ...T) FinSet[T] {
	var s FinSet[T]
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// Insert adds an element to the set. It reports false if the element was
// already present, leaving the set unchanged.
func (s *FinSet[T]) Insert(e T) bool {
	if s.elems == nil {
		s.elems = make(map[T]struct{})
	}
	if _, ok := s.elems[e]; ok {
		return false
	}
	s.elems[e] = struct{}{}
	return true
}

// Contains reports whether the element belongs to the set.
func (s FinSet[T]) Contains(e T) bool {
	_, ok := s.elems[e]
	return ok
}

// Len returns the number of elements in the set.
func (s FinSet[T]) Len() int {
	return len(s.elems)
}

// Elems returns the elements of the set in unspecified order.
func (s FinSet[T]) Elems() []T {
	out := make([]T, 0, len(s.elems))
	for e := range s.elems {
		out = append(out, e)
	}
	return out
}
