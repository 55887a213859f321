package core

import (
	"sort"
	"strings"
)

// Element is an atomic member of a generating set. For a plain metagraph
// elements are variables; a conditional metagraph additionally carries
// proposition elements.
type Element string

// Set is a finite collection of elements. A nil Set is a valid empty set:
// every operation treats it as such, and operations never mutate their
// receiver - they return fresh sets.
type Set map[Element]struct{}

// NewSet builds a Set from the given elements.
// Complexity: O(n).
func NewSet(elements ...Element) Set {
	s := make(Set, len(elements))
	for _, el := range elements {
		s[el] = struct{}{}
	}
	return s
}

// Len returns the number of elements in the set.
func (s Set) Len() int { return len(s) }

// IsEmpty reports whether the set has no elements.
func (s Set) IsEmpty() bool { return len(s) == 0 }

// Contains reports whether el is a member of the set.
func (s Set) Contains(el Element) bool {
	_, ok := s[el]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for el := range s {
		out[el] = struct{}{}
	}
	return out
}

// Union returns a new set holding every element of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for el := range s {
		out[el] = struct{}{}
	}
	for el := range other {
		out[el] = struct{}{}
	}
	return out
}

// Diff returns a new set holding the elements of s not present in other.
func (s Set) Diff(other Set) Set {
	out := make(Set, len(s))
	for el := range s {
		if !other.Contains(el) {
			out[el] = struct{}{}
		}
	}
	return out
}

// Intersect returns a new set holding the elements common to s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set, len(small))
	for el := range small {
		if large.Contains(el) {
			out[el] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every element of s belongs to other.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for el := range s {
		if !other.Contains(el) {
			return false
		}
	}
	return true
}

// ProperSubsetOf reports whether s is a subset of other and strictly smaller.
func (s Set) ProperSubsetOf(other Set) bool {
	return len(s) < len(other) && s.SubsetOf(other)
}

// Equal reports whether s and other hold exactly the same elements.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the elements in lexicographic order. This is the single
// canonical ordering reused by every matrix and enumeration operation.
// Complexity: O(n log n).
func (s Set) Sorted() []Element {
	out := make([]Element, 0, len(s))
	for el := range s {
		out = append(out, el)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a canonical serialization of the set, suitable for use as a
// map key. Two sets have equal keys iff they are Equal.
func (s Set) Key() string {
	els := s.Sorted()
	var b strings.Builder
	for i, el := range els {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(string(el))
	}
	return b.String()
}

// String renders the set as "{a, b, c}" in canonical order.
func (s Set) String() string {
	els := s.Sorted()
	var b strings.Builder
	b.WriteByte('{')
	for i, el := range els {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(el))
	}
	b.WriteByte('}')
	return b.String()
}
