package dictionary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the corpus file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatCSV                // comma separated word,definition rows
	FormatTSV                // tab separated word\tdefinition rows
	FormatSQLite             // SQLite database with a word/definition table
)

// sqliteMagic is the first 16 bytes of every SQLite 3 database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      FileFormat
	Name        string
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatCSV: {
		Format:      FormatCSV,
		Name:        "csv",
		Description: "Comma separated corpus",
		Extensions:  []string{".csv"},
	},
	FormatTSV: {
		Format:      FormatTSV,
		Name:        "tsv",
		Description: "Tab separated corpus",
		Extensions:  []string{".tsv", ".tab", ".txt"},
	},
	FormatSQLite: {
		Format:      FormatSQLite,
		Name:        "sqlite",
		Description: "SQLite corpus database",
		Extensions:  []string{".db", ".sqlite", ".sqlite3"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Name
	}
	return "unknown"
}

// ParseFileFormat maps a config or flag value ("csv", "tsv", "sqlite") onto a FileFormat.
func ParseFileFormat(name string) (FileFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, info := range supportedFormats {
		if info.Name == name {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unknown corpus format %q", name)
}

// DetectFileFormat detects the format of path from its header, then its extension.
func DetectFileFormat(path string) (FileFormat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return FormatUnknown, fmt.Errorf("%s is a directory", path)
	}

	isDB, err := hasSQLiteHeader(path)
	if err != nil {
		return FormatUnknown, err
	}
	if isDB {
		log.Debugf("Detected SQLite header in %s", path)
		return FormatSQLite, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	for f, fi := range supportedFormats {
		if f == FormatSQLite {
			// a database without the header is not usable
			continue
		}
		for _, e := range fi.Extensions {
			if ext == e {
				return f, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", path)
}

func hasSQLiteHeader(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	header := make([]byte, len(sqliteMagic))
	n, _ := file.Read(header)
	return n == len(sqliteMagic) && bytes.Equal(header, sqliteMagic), nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
