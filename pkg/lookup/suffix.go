package lookup

// SuffixTrie answers suffix queries with a Trie built over reversed words.
type SuffixTrie struct {
	trie *Trie
}

// BuildSuffixTrie inserts each Record with its Word reversed, keyed by the
// reversed normalized word.
func BuildSuffixTrie(corpus []Record, normalize Normalizer) *SuffixTrie {
	t := NewTrie(normalize)
	for _, rec := range corpus {
		t.insertKey(reverse(t.normalize(rec.Word)), rec.Reversed())
	}
	return &SuffixTrie{trie: t}
}

// FindSuffixMatches returns every Record whose normalized word ends with suffix.
// Words come back in their original orientation; definitions are never touched.
func (st *SuffixTrie) FindSuffixMatches(suffix string) []Record {
	matches := st.trie.findKeyPrefix(reverse(st.trie.normalize(suffix)))
	for i, rec := range matches {
		matches[i] = rec.Reversed()
	}
	return matches
}

// Len returns the number of distinct reversed keys.
func (st *SuffixTrie) Len() int {
	return st.trie.Len()
}
