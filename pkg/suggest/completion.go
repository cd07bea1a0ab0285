package suggest

import (
	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is one completed headword.
type Suggestion struct {
	Word        string
	Definitions int
}

// headword is the item stored in the trie for one normalized key.
// word keeps the spelling of the first record seen for the key.
type headword struct {
	word        string
	definitions map[string]struct{}
}

// Completer indexes the headwords of a corpus for prefix completion.
type Completer struct {
	trie           *patricia.Trie
	normalize      lookup.Normalizer
	totalWords     int
	totalRecords   int
	maxDefinitions int
}

// NewCompleter returns an empty Completer. A nil normalize means lookup.FoldCase.
func NewCompleter(normalize lookup.Normalizer) *Completer {
	if normalize == nil {
		normalize = lookup.FoldCase
	}
	return &Completer{
		trie:      patricia.NewTrie(),
		normalize: normalize,
	}
}

// NewCompleterFromRecords indexes every record of corpus.
func NewCompleterFromRecords(corpus []lookup.Record, normalize lookup.Normalizer) *Completer {
	c := NewCompleter(normalize)
	for _, rec := range corpus {
		c.AddRecord(rec)
	}
	return c
}

// AddRecord adds rec's word, counting each distinct definition once.
func (c *Completer) AddRecord(rec lookup.Record) {
	key := patricia.Prefix(c.normalize(rec.Word))
	if len(key) == 0 {
		return
	}
	c.totalRecords++

	var hw *headword
	if item := c.trie.Get(key); item != nil {
		hw = item.(*headword)
	} else {
		hw = &headword{word: rec.Word, definitions: make(map[string]struct{}, 1)}
		c.trie.Insert(key, hw)
		c.totalWords++
	}
	hw.definitions[rec.Definition] = struct{}{}
	if n := len(hw.definitions); n > c.maxDefinitions {
		c.maxDefinitions = n
	}
}

// Complete returns up to limit headwords whose normalized form starts with
// prefix, ordered by word. A limit below 1 returns every match.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return []Suggestion{}
	}
	return searchTrie(c.trie, c.normalize(prefix), limit)
}

// Stats reports headword and record counts.
func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"headwords":      c.totalWords,
		"records":        c.totalRecords,
		"maxDefinitions": c.maxDefinitions,
	}
}
