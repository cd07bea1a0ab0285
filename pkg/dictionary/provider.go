// Package dictionary loads the corpus of (word, definition) records the lookup
// engine is built over: delimited text files, SQLite tables, or the table
// embedded in the binary.
//
// A load either returns the complete corpus or an error wrapping
// ErrCorpusLoad; callers never see a partial corpus.
package dictionary

import (
	"context"
	"errors"
	"fmt"

	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/charmbracelet/log"
)

var (
	// ErrCorpusLoad wraps every failure to read or parse a corpus.
	ErrCorpusLoad = errors.New("corpus load failed")
	// ErrEmptyCorpus is returned when a source holds no usable records.
	ErrEmptyCorpus = errors.New("corpus is empty")
)

// Provider supplies the full ordered corpus.
type Provider interface {
	Load(ctx context.Context) ([]lookup.Record, error)
	// Describe names the source for logs.
	Describe() string
}

// Open returns the Provider for path. An empty path selects the embedded
// corpus. An empty format is detected from the file.
func Open(path, format, table string) (Provider, error) {
	if path == "" {
		return EmbeddedProvider{}, nil
	}

	var f FileFormat
	if format == "" {
		detected, err := DetectFileFormat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
		}
		f = detected
	} else {
		parsed, err := ParseFileFormat(format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
		}
		f = parsed
	}

	switch f {
	case FormatCSV:
		return &DelimitedProvider{Path: path, Comma: ','}, nil
	case FormatTSV:
		return &DelimitedProvider{Path: path, Comma: '\t'}, nil
	case FormatSQLite:
		return &SQLiteProvider{Path: path, Table: table}, nil
	}
	return nil, fmt.Errorf("%w: unsupported format %v for %s", ErrCorpusLoad, f, path)
}

// Load opens path and returns its records, failing on an empty corpus.
func Load(ctx context.Context, path, format, table string) ([]lookup.Record, error) {
	p, err := Open(path, format, table)
	if err != nil {
		return nil, err
	}
	recs, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: %w: %s", ErrCorpusLoad, ErrEmptyCorpus, p.Describe())
	}
	log.Debugf("Loaded %d records from %s", len(recs), p.Describe())
	return recs, nil
}
