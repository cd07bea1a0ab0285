package dictionary

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/bastiangx/wordfind/pkg/lookup"
)

//go:embed data/words.csv
var embeddedCorpus []byte

// EmbeddedProvider serves the corpus compiled into the binary.
type EmbeddedProvider struct{}

// Load implements Provider.
func (EmbeddedProvider) Load(ctx context.Context) ([]lookup.Record, error) {
	recs, err := ReadDelimited(ctx, bytes.NewReader(embeddedCorpus), ',')
	if err != nil {
		return nil, fmt.Errorf("embedded corpus: %w", err)
	}
	return recs, nil
}

// Describe implements Provider.
func (EmbeddedProvider) Describe() string {
	return "embedded corpus"
}
