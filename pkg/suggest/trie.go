package suggest

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

func searchTrie(trie *patricia.Trie, key string, limit int) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	suggestions := []Suggestion{}
	err := trie.VisitSubtree(patricia.Prefix(key), func(p patricia.Prefix, item patricia.Item) error {
		hw, ok := item.(*headword)
		if !ok {
			log.Errorf("Unknown item type: %T for key %s", item, p)
			return nil
		}
		suggestions = append(suggestions, Suggestion{
			Word:        hw.word,
			Definitions: len(hw.definitions),
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []Suggestion{}
	}

	slices.SortFunc(suggestions, func(a, b Suggestion) int {
		return cmp.Compare(a.Word, b.Word)
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
