// Package lookup is the word-lookup core: an anagram index keyed by sorted-rune
// signatures, a rune trie for prefix and fixed-length pattern search, a reversed
// trie for suffix search, and the Engine that dispatches a query to one of them.
//
// Every structure is built once from an immutable corpus snapshot and is safe
// for concurrent reads afterwards.
package lookup

// Record is one (word, definition) entry of the corpus.
// It is comparable, so two Records are equal only when both fields are equal.
type Record struct {
	Word       string `json:"word" msgpack:"word"`
	Definition string `json:"definition" msgpack:"definition"`
}

// Reversed returns a copy of r with Word reversed rune by rune.
func (r Record) Reversed() Record {
	return Record{Word: reverse(r.Word), Definition: r.Definition}
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
