package lookup

import (
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var sampleCorpus = []Record{
	{Word: "cat", Definition: "a feline"},
	{Word: "act", Definition: "to perform"},
	{Word: "cats", Definition: "plural of cat"},
	{Word: "tac", Definition: "nonsense"},
}

var wideCorpus = []Record{
	{Word: "listen", Definition: "to pay attention to sound"},
	{Word: "silent", Definition: "without sound"},
	{Word: "enlist", Definition: "to enrol"},
	{Word: "tinsel", Definition: "glittering decoration"},
	{Word: "inlets", Definition: "small arms of the sea"},
	{Word: "google", Definition: "a search"},
	{Word: "stone", Definition: "a hard mineral"},
	{Word: "tones", Definition: "musical sounds"},
	{Word: "notes", Definition: "written records"},
	{Word: "onset", Definition: "a beginning"},
	{Word: "seton", Definition: "a surgical thread"},
	{Word: "stand", Definition: "to be upright"},
	{Word: "standing", Definition: "upright position"},
	{Word: "understand", Definition: "to comprehend"},
	{Word: "a", Definition: "indefinite article"},
	{Word: "an", Definition: "indefinite article before vowels"},
	{Word: "and", Definition: "a conjunction"},
	{Word: "ant", Definition: "an insect"},
	{Word: "tan", Definition: "a light brown"},
	{Word: "nat", Definition: "a nationalist"},
	{Word: "café", Definition: "a coffee house"},
	{Word: "naïve", Definition: "innocent"},
}

func sortedWords(recs []Record) []string {
	words := make([]string, 0, len(recs))
	for _, r := range NewSet(recs...).Sorted() {
		words = append(words, r.Word)
	}
	return words
}
