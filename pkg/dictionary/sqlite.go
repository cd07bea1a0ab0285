package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bastiangx/wordfind/pkg/lookup"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "words"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteProvider reads the word and definition columns of a SQLite table.
type SQLiteProvider struct {
	Path  string
	Table string
}

// Load implements Provider.
func (p *SQLiteProvider) Load(ctx context.Context) ([]lookup.Record, error) {
	dsn, err := readOnlyDSN(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorpusLoad, p.Path, err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrCorpusLoad, p.Path, err)
	}
	defer db.Close()

	recs, err := ReadTable(ctx, db, p.Table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Path, err)
	}
	return recs, nil
}

// readOnlyDSN builds a read-only file: URI for path. The path is made absolute
// and percent-escaped, so '?', '#' and '%' in file names stay part of the path.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	return (&url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}).String(), nil
}

// Describe implements Provider.
func (p *SQLiteProvider) Describe() string {
	return fmt.Sprintf("%s (table %s)", p.Path, p.table())
}

func (p *SQLiteProvider) table() string {
	if p.Table == "" {
		return DefaultTable
	}
	return p.Table
}

// ReadTable returns the rows of table in rowid order. Rows with a blank word are skipped.
func ReadTable(ctx context.Context, db *sql.DB, table string) ([]lookup.Record, error) {
	if table == "" {
		table = DefaultTable
	}
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrCorpusLoad, table)
	}

	rows, err := db.QueryContext(ctx, `SELECT word, definition FROM `+table+` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrCorpusLoad, table, err)
	}
	defer rows.Close()

	var recs []lookup.Record
	for rows.Next() {
		var word, definition sql.NullString
		if err := rows.Scan(&word, &definition); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", ErrCorpusLoad, table, err)
		}
		w := strings.TrimSpace(word.String)
		if w == "" {
			continue
		}
		recs = append(recs, lookup.Record{Word: w, Definition: strings.TrimSpace(definition.String)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrCorpusLoad, table, err)
	}
	return recs, nil
}
