package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadDelimited(t *testing.T) {
	tests := []struct {
		name  string
		input string
		comma rune
		want  []lookup.Record
	}{
		{
			name:  "header",
			input: "word,definition\ncat,a feline\nact,to perform\n",
			comma: ',',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline"}, {Word: "act", Definition: "to perform"}},
		},
		{
			name:  "no header",
			input: "cat,a feline\nact,to perform\n",
			comma: ',',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline"}, {Word: "act", Definition: "to perform"}},
		},
		{
			name:  "reordered header with extra column",
			input: "id,Definition,Word\n1,a feline,cat\n2,to perform,act\n",
			comma: ',',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline"}, {Word: "act", Definition: "to perform"}},
		},
		{
			name:  "quoted definition with comma",
			input: "word,definition\ncat,\"a feline, small\"\n",
			comma: ',',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline, small"}},
		},
		{
			name:  "byte order mark",
			input: "\ufeffword,definition\ncat,a feline\n",
			comma: ',',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline"}},
		},
		{
			name:  "blank words skipped",
			input: "word,definition\n ,orphan\ncat,a feline\n",
			comma: ',',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline"}},
		},
		{
			name:  "tab separated",
			input: "word\tdefinition\ncat\ta feline\ntac\tnonsense\n",
			comma: '\t',
			want:  []lookup.Record{{Word: "cat", Definition: "a feline"}, {Word: "tac", Definition: "nonsense"}},
		},
		{
			name:  "duplicate spellings kept",
			input: "bat,a flying mammal\nbat,a club\n",
			comma: ',',
			want:  []lookup.Record{{Word: "bat", Definition: "a flying mammal"}, {Word: "bat", Definition: "a club"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadDelimited(context.Background(), strings.NewReader(tc.input), tc.comma)
			if err != nil {
				t.Fatalf("ReadDelimited: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReadDelimitedShortRow(t *testing.T) {
	_, err := ReadDelimited(context.Background(), strings.NewReader("word,definition\ncat,a feline\nlonely\n"), ',')
	if !errors.Is(err, ErrCorpusLoad) {
		t.Fatalf("error = %v, want ErrCorpusLoad", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name line 3", err)
	}
}

func TestReadDelimitedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadDelimited(ctx, strings.NewReader("cat,a feline\n"), ',')
	if !errors.Is(err, context.Canceled) || !errors.Is(err, ErrCorpusLoad) {
		t.Errorf("error = %v, want canceled corpus load", err)
	}
}

func TestDetectFileFormat(t *testing.T) {
	csvPath := writeFile(t, "corpus.csv", "cat,a feline\n")
	tsvPath := writeFile(t, "corpus.tsv", "cat\ta feline\n")
	txtPath := writeFile(t, "corpus.txt", "cat\ta feline\n")
	fakeDB := writeFile(t, "corpus.db", "not a database")
	unknown := writeFile(t, "corpus.json", "{}")

	tests := []struct {
		path    string
		want    FileFormat
		wantErr bool
	}{
		{csvPath, FormatCSV, false},
		{tsvPath, FormatTSV, false},
		{txtPath, FormatTSV, false},
		{fakeDB, FormatUnknown, true},
		{unknown, FormatUnknown, true},
		{filepath.Join(t.TempDir(), "missing.csv"), FormatUnknown, true},
	}
	for _, tc := range tests {
		t.Run(filepath.Base(tc.path), func(t *testing.T) {
			got, err := DetectFileFormat(tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("DetectFileFormat error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("DetectFileFormat = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseFileFormat(t *testing.T) {
	for name, want := range map[string]FileFormat{"csv": FormatCSV, " TSV ": FormatTSV, "sqlite": FormatSQLite} {
		got, err := ParseFileFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFileFormat(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseFileFormat("xml"); err == nil {
		t.Error("ParseFileFormat(xml) should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "corpus.csv", "word,definition\ncat,a feline\nact,to perform\n")
	recs, err := Load(context.Background(), path, "", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("Load returned %d records, want 2", len(recs))
	}
}

func TestLoadExplicitFormatOverridesExtension(t *testing.T) {
	path := writeFile(t, "corpus.dat", "cat\ta feline\n")
	recs, err := Load(context.Background(), path, "tsv", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []lookup.Record{{Word: "cat", Definition: "a feline"}}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("got %v, want %v", recs, want)
	}
}

func TestLoadFailures(t *testing.T) {
	headerOnly := writeFile(t, "empty.csv", "word,definition\n")
	unknown := writeFile(t, "corpus.json", "{}")

	tests := []struct {
		name   string
		path   string
		format string
		target error
	}{
		{"empty corpus", headerOnly, "", ErrEmptyCorpus},
		{"undetectable", unknown, "", ErrCorpusLoad},
		{"bad format name", headerOnly, "yaml", ErrCorpusLoad},
		{"missing file", filepath.Join(t.TempDir(), "nope.csv"), "csv", ErrCorpusLoad},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(context.Background(), tc.path, tc.format, "")
			if !errors.Is(err, tc.target) {
				t.Errorf("Load error = %v, want %v", err, tc.target)
			}
			if !errors.Is(err, ErrCorpusLoad) {
				t.Errorf("Load error = %v, want it to wrap ErrCorpusLoad", err)
			}
		})
	}
}

func createSQLiteCorpus(t *testing.T, table string, rows [][2]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE ` + table + ` (word TEXT, definition TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO `+table+` (word, definition) VALUES (?, ?)`, r[0], r[1]); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestSQLiteProvider(t *testing.T) {
	path := createSQLiteCorpus(t, "words", [][2]string{
		{"cat", "a feline"},
		{"", "orphan"},
		{"act", "to perform"},
	})

	format, err := DetectFileFormat(path)
	if err != nil || format != FormatSQLite {
		t.Fatalf("DetectFileFormat = %v, %v; want sqlite", format, err)
	}

	recs, err := Load(context.Background(), path, "", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []lookup.Record{{Word: "cat", Definition: "a feline"}, {Word: "act", Definition: "to perform"}}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("got %v, want %v", recs, want)
	}
}

func TestSQLiteProviderCustomTable(t *testing.T) {
	path := createSQLiteCorpus(t, "glossary", [][2]string{{"tac", "nonsense"}})
	recs, err := Load(context.Background(), path, "sqlite", "glossary")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 1 || recs[0].Word != "tac" {
		t.Errorf("got %v", recs)
	}

	if _, err := Load(context.Background(), path, "sqlite", "missing"); !errors.Is(err, ErrCorpusLoad) {
		t.Errorf("missing table error = %v, want ErrCorpusLoad", err)
	}
}

func TestReadTableRejectsInjection(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = ReadTable(context.Background(), db, "words; DROP TABLE words")
	if !errors.Is(err, ErrCorpusLoad) {
		t.Errorf("error = %v, want ErrCorpusLoad", err)
	}
}

func TestEmbeddedProvider(t *testing.T) {
	p, err := Open("", "", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	recs, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("embedded corpus is empty")
	}
	found := false
	for _, r := range recs {
		if r.Word == "cat" {
			found = true
		}
		if r.Word == "word" {
			t.Error("header row leaked into the corpus")
		}
	}
	if !found {
		t.Error("embedded corpus should contain cat")
	}
}

func TestGetFormatInfo(t *testing.T) {
	for _, f := range []FileFormat{FormatCSV, FormatTSV, FormatSQLite} {
		info, ok := GetFormatInfo(f)
		if !ok {
			t.Fatalf("GetFormatInfo(%v) not found", f)
		}
		if info.Format != f || info.Name != f.String() || len(info.Extensions) == 0 {
			t.Errorf("GetFormatInfo(%v) = %+v", f, info)
		}
	}
	if _, ok := GetFormatInfo(FormatUnknown); ok {
		t.Error("GetFormatInfo(FormatUnknown) reported a format")
	}
	if FormatUnknown.String() != "unknown" {
		t.Errorf("FormatUnknown.String() = %q", FormatUnknown.String())
	}
}

func TestSQLiteProviderPathWithURIChars(t *testing.T) {
	plain := createSQLiteCorpus(t, "words", [][2]string{{"cat", "a feline"}})
	odd := filepath.Join(filepath.Dir(plain), "odd?name#1%.db")
	if err := os.Rename(plain, odd); err != nil {
		t.Fatal(err)
	}

	recs, err := (&SQLiteProvider{Path: odd}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load(%s): %v", odd, err)
	}
	if want := []lookup.Record{{Word: "cat", Definition: "a feline"}}; !reflect.DeepEqual(recs, want) {
		t.Errorf("got %v, want %v", recs, want)
	}
}

func TestReadOnlyDSN(t *testing.T) {
	dsn, err := readOnlyDSN("/data/odd?name#1.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := "file:///data/odd%3Fname%231.db?mode=ro"; dsn != want && os.PathSeparator == '/' {
		t.Errorf("readOnlyDSN = %q, want %q", dsn, want)
	}

	rel, err := readOnlyDSN("corpus.db")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rel, "file:///") || !strings.HasSuffix(rel, "/corpus.db?mode=ro") {
		t.Errorf("relative path DSN = %q", rel)
	}
}
