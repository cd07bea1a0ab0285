// Package suggest provides headword type-ahead over a patricia trie: one
// suggestion per distinct word, with the number of definitions it carries.
package suggest

import "github.com/bastiangx/wordfind/pkg/lookup"

// ICompleter defines the interface for headword completion engines
type ICompleter interface {
	// Complete returns up to limit headwords starting with prefix
	Complete(prefix string, limit int) []Suggestion

	// AddRecord indexes the record's word
	AddRecord(rec lookup.Record)

	// Stats returns statistics about the indexed headwords
	Stats() map[string]int
}
