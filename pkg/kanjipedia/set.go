package kanjipedia

import (
	"sort"
	"strings"
)

func trim(s string) string { return strings.TrimSpace(s) }

// Set is an ordered collection of unique, trimmed, non-empty strings.
// The zero value is an empty set ready for use.
type Set struct {
	members []string
}

// NewSet builds a set from the given values, trimming and deduplicating.
func NewSet(values ...string) Set {
	var s Set
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set. Leading/trailing whitespace is trimmed;
// empty strings are ignored.
func (s *Set) Add(v string) {
	v = trim(v)
	if v == "" {
		return
	}
	i := sort.SearchStrings(s.members, v)
	if i < len(s.members) && s.members[i] == v {
		return
	}
	s.members = append(s.members, "")
	copy(s.members[i+1:], s.members[i:])
	s.members[i] = v
}

// Has reports whether v is a member.
func (s Set) Has(v string) bool {
	i := sort.SearchStrings(s.members, trim(v))
	return i < len(s.members) && s.members[i] == trim(v)
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.members) }

// Members returns the members in sorted order. The returned slice is a copy.
func (s Set) Members() []string {
	out := make([]string, len(s.members))
	copy(out, s.members)
	return out
}

// Union returns a new set containing the members of both sets.
func (s Set) Union(o Set) Set {
	u := NewSet(s.members...)
	for _, v := range o.members {
		u.Add(v)
	}
	return u
}

// Equal reports whether both sets hold exactly the same members.
func (s Set) Equal(o Set) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for i, v := range s.members {
		if o.members[i] != v {
			return false
		}
	}
	return true
}
