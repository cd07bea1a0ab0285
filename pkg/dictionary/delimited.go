package dictionary

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/charmbracelet/log"
)

// DelimitedProvider reads a CSV or TSV corpus from disk.
type DelimitedProvider struct {
	Path  string
	Comma rune
}

// Load implements Provider.
func (p *DelimitedProvider) Load(ctx context.Context) ([]lookup.Record, error) {
	file, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
	}
	defer file.Close()

	recs, err := ReadDelimited(ctx, file, p.Comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Path, err)
	}
	return recs, nil
}

// Describe implements Provider.
func (p *DelimitedProvider) Describe() string {
	return p.Path
}

// ReadDelimited parses rows of r separated by comma. When the first row names
// "word" and "definition" columns, those columns are used and the row is
// skipped; otherwise columns 0 and 1 are word and definition. Rows with a
// blank word are skipped.
func ReadDelimited(ctx context.Context, r io.Reader, comma rune) ([]lookup.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	wordCol, defCol := 0, 1
	var recs []lookup.Record
	first := true
	skipped := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if w, d, ok := headerColumns(row); ok {
				wordCol, defCol = w, d
				continue
			}
		}
		if len(row) <= max(wordCol, defCol) {
			return nil, fmt.Errorf("%w: line %d: want word and definition columns, got %d fields",
				ErrCorpusLoad, line, len(row))
		}

		word := strings.TrimSpace(row[wordCol])
		if word == "" {
			skipped++
			continue
		}
		recs = append(recs, lookup.Record{
			Word:       word,
			Definition: strings.TrimSpace(row[defCol]),
		})
	}

	if skipped > 0 {
		log.Debugf("Skipped %d rows with a blank word", skipped)
	}
	return recs, nil
}

// headerColumns finds the word and definition columns in a header row.
func headerColumns(row []string) (int, int, bool) {
	wordCol, defCol := -1, -1
	for i, name := range row {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "word":
			wordCol = i
		case "definition":
			defCol = i
		}
	}
	return wordCol, defCol, wordCol >= 0 && defCol >= 0
}
