package pda

import "sort"

// Set is an unordered collection of states or symbols.
type Set[T ~string] map[T]struct{}

func NewSet[T ~string](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

func (s Set[T]) Equal(o Set[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if _, ok := o[e]; !ok {
			return false
		}
	}
	return true
}

func (s Set[T]) Copy() Set[T] {
	c := make(Set[T], len(s))
	for e := range s {
		c[e] = struct{}{}
	}
	return c
}

// Sorted returns the elements in lexical order. Scans that report errors
// iterate over sorted elements so that the same mistake is reported first
// on every run.
func (s Set[T]) Sorted() []T {
	elems := make([]T, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(i, j int) bool {
		return elems[i] < elems[j]
	})
	return elems
}
