package lookup

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Finder is the query surface consumed by the server and the CLI.
type Finder interface {
	// QueryToken dispatches input under a raw option token ("normal", "prefix", ...).
	QueryToken(input, token string) Set

	// QueryAll merges the results of several modes for one input.
	QueryAll(input string, modes ...Mode) Set

	// Define returns the Records whose word is exactly word.
	Define(word string) []Record

	// Stats returns sizes of the loaded corpus and structures.
	Stats() map[string]int
}

type structures struct {
	anagrams *AnagramIndex
	prefix   *Trie
	suffix   *SuffixTrie
}

// Engine owns the lookup structures for one corpus snapshot and dispatches
// queries to them. Structures are built once, then read without locking.
type Engine struct {
	corpus    []Record
	normalize Normalizer
	cache     *ResultCache
	logger    *log.Logger

	mu    sync.Mutex
	built atomic.Pointer[structures]
}

// Option configures an Engine.
type Option func(*Engine)

// WithNormalizer sets the key normalization applied to corpus words and queries.
func WithNormalizer(n Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.normalize = n
		}
	}
}

// WithLogger routes the engine's build and dispatch logs to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCacheSize enables a result cache holding up to n queries. n <= 0 disables it.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cache = NewResultCache(n)
		} else {
			e.cache = nil
		}
	}
}

// New returns an Engine over corpus. The corpus slice is copied, so later
// changes by the caller are not observed.
func New(corpus []Record, opts ...Option) *Engine {
	e := &Engine{
		corpus:    append([]Record(nil), corpus...),
		normalize: FoldCase,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build constructs the anagram index and both tries exactly once.
// The three structures are built in parallel. A canceled ctx aborts the build
// and leaves the Engine unbuilt, so Build may be retried.
func (e *Engine) Build(ctx context.Context) error {
	if e.built.Load() != nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.built.Load() != nil {
		return nil
	}

	start := time.Now()
	var s structures
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		s.anagrams = BuildAnagramIndex(e.corpus, e.normalize)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		s.prefix = BuildTrie(e.corpus, e.normalize)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		s.suffix = BuildSuffixTrie(e.corpus, e.normalize)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("build lookup structures: %w", err)
	}

	e.built.Store(&s)
	e.logger.Debugf("Built lookup structures for %d records in %v", len(e.corpus), time.Since(start))
	return nil
}

// Query dispatches input to the structure selected by mode.
// Empty input, or a mode outside the four recognized ones, yields an empty Set
// without consulting any structure.
func (e *Engine) Query(input string, mode Mode) Set {
	if input == "" || !mode.Valid() {
		return Set{}
	}
	return NewSet(e.lookup(input, mode)...)
}

// QueryToken is Query with a raw option token. Unrecognized tokens are not an
// error; they yield an empty Set.
func (e *Engine) QueryToken(input, token string) Set {
	mode, err := ParseMode(token)
	if err != nil {
		e.logger.Debugf("Ignoring query '%s': %v", input, err)
		return Set{}
	}
	return e.Query(input, mode)
}

// QueryAll merges the results of each mode for input, deduplicated by the full Record.
func (e *Engine) QueryAll(input string, modes ...Mode) Set {
	out := Set{}
	for _, mode := range modes {
		out.Merge(e.Query(input, mode))
	}
	return out
}

// Define returns every Record whose normalized word equals the normalized word.
func (e *Engine) Define(word string) []Record {
	if word == "" {
		return []Record{}
	}
	s := e.structures()
	if s == nil {
		return []Record{}
	}
	return s.prefix.Get(word)
}

// Len returns the corpus size.
func (e *Engine) Len() int {
	return len(e.corpus)
}

// Stats reports corpus and structure sizes, plus cache counters when enabled.
func (e *Engine) Stats() map[string]int {
	stats := map[string]int{
		"totalRecords": len(e.corpus),
		"built":        0,
	}
	if s := e.built.Load(); s != nil {
		stats["built"] = 1
		stats["signatures"] = s.anagrams.Len()
		stats["prefixKeys"] = s.prefix.Len()
		stats["suffixKeys"] = s.suffix.Len()
	}
	if e.cache != nil {
		for k, v := range e.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}

func (e *Engine) lookup(input string, mode Mode) []Record {
	key := e.normalize(input)
	if e.cache != nil {
		if recs, ok := e.cache.Get(mode, key); ok {
			return recs
		}
	}

	s := e.structures()
	if s == nil {
		return nil
	}

	var recs []Record
	switch mode {
	case ModeNormal:
		recs = s.anagrams.Lookup(input)
	case ModePrefix:
		recs = s.prefix.FindWithPrefix(input)
	case ModeSuffix:
		recs = s.suffix.FindSuffixMatches(input)
	case ModePattern:
		recs = s.prefix.FindWithPattern(input)
	}

	if e.cache != nil {
		recs = NewSet(recs...).Sorted()
		e.cache.Put(mode, key, recs)
	}
	return recs
}

// structures returns the built structures, building them lazily on first use.
func (e *Engine) structures() *structures {
	if s := e.built.Load(); s != nil {
		return s
	}
	if err := e.Build(context.Background()); err != nil {
		e.logger.Errorf("Lazy build failed: %v", err)
		return nil
	}
	return e.built.Load()
}
