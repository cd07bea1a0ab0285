package lookup

import (
	"slices"
)

// AnagramIndex groups Records by the signature of their normalized word.
type AnagramIndex struct {
	buckets   map[string][]Record
	normalize Normalizer
}

// Signature returns the runes of word sorted by code point.
// Two words share a signature iff they are made of the same multiset of runes.
func Signature(word string) string {
	runes := []rune(word)
	slices.Sort(runes)
	return string(runes)
}

// BuildAnagramIndex buckets corpus by signature, keeping corpus order inside a bucket.
// A nil normalize means FoldCase.
func BuildAnagramIndex(corpus []Record, normalize Normalizer) *AnagramIndex {
	if normalize == nil {
		normalize = FoldCase
	}
	idx := &AnagramIndex{
		buckets:   make(map[string][]Record),
		normalize: normalize,
	}
	for _, rec := range corpus {
		key := Signature(normalize(rec.Word))
		idx.buckets[key] = append(idx.buckets[key], rec)
	}
	return idx
}

// Lookup returns every Record whose word is an anagram of query.
// A missing signature yields an empty slice, never an error.
func (idx *AnagramIndex) Lookup(query string) []Record {
	bucket, ok := idx.buckets[Signature(idx.normalize(query))]
	if !ok {
		return []Record{}
	}
	return slices.Clone(bucket)
}

// Len returns the number of distinct signatures.
func (idx *AnagramIndex) Len() int {
	return len(idx.buckets)
}
