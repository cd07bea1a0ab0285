package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	defStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	modeStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ea9a97"})
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

const helpText = `  <input>            query in the current mode
  <mode> <input>     query once in normal, prefix, suffix or pattern mode
  :mode <mode>       switch the current mode
  :complete <prefix> complete headwords
  :define <word>     show the definitions of a word
  :stats             show corpus and cache sizes
  pattern wildcards: _ and ? match exactly one character`

func renderRecords(w io.Writer, mode lookup.Mode, input string, records []lookup.Record, limit int) {
	fmt.Fprintf(w, "%s %s %s\n",
		headerStyle.Render(fmt.Sprintf("%d results for", len(records))),
		wordStyle.Render(input),
		modeStyle.Render("("+mode.String()+")"))

	shown := records
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	width := 0
	for _, r := range shown {
		width = max(width, utils.RuneLen(r.Word))
	}
	for i, r := range shown {
		pad := strings.Repeat(" ", width-utils.RuneLen(r.Word))
		fmt.Fprintf(w, "%3d. %s%s  %s\n", i+1, wordStyle.Render(r.Word), pad, defStyle.Render(r.Definition))
	}
	if hidden := len(records) - len(shown); hidden > 0 {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("     ... and %s more", utils.FormatWithCommas(hidden))))
	}
}

func renderSuggestions(w io.Writer, prefix string, suggestions []suggest.Suggestion) {
	fmt.Fprintf(w, "%s %s\n",
		headerStyle.Render(fmt.Sprintf("%d completions for", len(suggestions))),
		wordStyle.Render(prefix))
	for i, s := range suggestions {
		fmt.Fprintf(w, "%3d. %-30s %s\n", i+1, wordStyle.Render(s.Word),
			defStyle.Render(fmt.Sprintf("(%d definitions)", s.Definitions)))
	}
}

func renderStats(w io.Writer, stats map[string]int) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fmt.Fprintln(w, headerStyle.Render("stats"))
	for _, k := range keys {
		fmt.Fprintf(w, "  %-18s %s\n", k, wordStyle.Render(utils.FormatWithCommas(stats[k])))
	}
}
