package lookup

import (
	"cmp"
	"slices"
)

// Set is a collection of Records with no two structurally equal members.
type Set map[Record]struct{}

// NewSet returns a Set holding recs.
func NewSet(recs ...Record) Set {
	s := make(Set, len(recs))
	s.Add(recs...)
	return s
}

// Add inserts recs, ignoring ones already present.
func (s Set) Add(recs ...Record) {
	for _, rec := range recs {
		s[rec] = struct{}{}
	}
}

// Merge adds every member of other to s.
func (s Set) Merge(other Set) {
	for rec := range other {
		s[rec] = struct{}{}
	}
}

// Contains reports whether rec is a member of s.
func (s Set) Contains(rec Record) bool {
	_, ok := s[rec]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members ordered by Word, then Definition.
func (s Set) Sorted() []Record {
	out := make([]Record, 0, len(s))
	for rec := range s {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b Record) int {
		if c := cmp.Compare(a.Word, b.Word); c != 0 {
			return c
		}
		return cmp.Compare(a.Definition, b.Definition)
	})
	return out
}
