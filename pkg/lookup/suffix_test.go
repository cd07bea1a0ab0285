package lookup

import (
	"reflect"
	"strings"
	"testing"
)

func TestFindSuffixMatches(t *testing.T) {
	st := BuildSuffixTrie(wideCorpus, FoldCase)

	tests := []struct {
		suffix string
		want   []string
	}{
		{"t", []string{"ant", "enlist", "nat", "onset", "silent"}},
		{"and", []string{"and", "stand", "understand"}},
		{"stand", []string{"stand", "understand"}},
		{"ING", []string{"standing"}},
		{"fé", []string{"café"}},
		{"nes", []string{"tones"}},
		{"zz", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.suffix, func(t *testing.T) {
			got := sortedWords(st.FindSuffixMatches(tc.suffix))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FindSuffixMatches(%q) = %v, want %v", tc.suffix, got, tc.want)
			}
		})
	}
}

// Every word ending in s comes back in its original orientation, and the
// definition is left as it was.
func TestSuffixRoundTrip(t *testing.T) {
	st := BuildSuffixTrie(wideCorpus, FoldCase)
	corpus := NewSet(wideCorpus...)

	for _, suffix := range []string{"", "s", "e", "nt", "on", "d"} {
		want := Set{}
		for _, rec := range wideCorpus {
			if strings.HasSuffix(rec.Word, suffix) {
				want.Add(rec)
			}
		}
		got := NewSet(st.FindSuffixMatches(suffix)...)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("suffix %q: got %v, want %v", suffix, got.Sorted(), want.Sorted())
		}
		for rec := range got {
			if !corpus.Contains(rec) {
				t.Errorf("suffix %q returned %v, not a corpus record", suffix, rec)
			}
		}
	}
}

func TestRecordReversed(t *testing.T) {
	rec := Record{Word: "naïve", Definition: "innocent"}
	rev := rec.Reversed()
	if rev.Word != "evïan" {
		t.Errorf("Reversed().Word = %q, want %q", rev.Word, "evïan")
	}
	if rev.Definition != rec.Definition {
		t.Errorf("definition changed: %q", rev.Definition)
	}
	if rev.Reversed() != rec {
		t.Errorf("double reversal = %v, want %v", rev.Reversed(), rec)
	}
}
