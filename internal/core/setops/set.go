// Package setops provides the string set type and set operations used by
// the list comparison core.
package setops

import "sort"

// Set is a collection of unique strings.
type Set map[string]struct{}

// New creates an empty set with room for the given number of members.
func New(capacity int) Set {
	return make(Set, capacity)
}

// FromTokens builds a set from a token slice, collapsing duplicates.
func FromTokens(tokens []string) Set {
	s := New(len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts a member into the set.
func (s Set) Add(member string) {
	s[member] = struct{}{}
}

// Has reports whether the member is present.
func (s Set) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Intersect returns the members present in both sets.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	r := New(small.Len())
	for m := range small {
		if large.Has(m) {
			r.Add(m)
		}
	}
	return r
}

// Union returns the members present in either set.
func (s Set) Union(other Set) Set {
	r := New(s.Len() + other.Len())
	for m := range s {
		r.Add(m)
	}
	for m := range other {
		r.Add(m)
	}
	return r
}

// Difference returns the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	r := New(s.Len())
	for m := range s {
		if !other.Has(m) {
			r.Add(m)
		}
	}
	return r
}

// Members returns the members in unspecified order.
func (s Set) Members() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	return out
}

// SortedMembers returns the members in ascending lexical order.
func (s Set) SortedMembers() []string {
	out := s.Members()
	sort.Strings(out)
	return out
}
