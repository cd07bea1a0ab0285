package lookup

// Wildcard markers accepted by FindWithPattern. Each matches exactly one rune.
const (
	WildcardUnderscore = '_'
	WildcardQuestion   = '?'
)

// IsWildcard reports whether r matches any single rune in a pattern.
func IsWildcard(r rune) bool {
	return r == WildcardUnderscore || r == WildcardQuestion
}

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
	// records holds every distinct Record whose key ends here, in insertion order.
	records []Record
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a rune-indexed prefix tree over normalized words.
// Each node exclusively owns its children.
type Trie struct {
	root      *trieNode
	normalize Normalizer
	keys      int
}

// NewTrie returns an empty Trie. A nil normalize means FoldCase.
func NewTrie(normalize Normalizer) *Trie {
	if normalize == nil {
		normalize = FoldCase
	}
	return &Trie{root: newTrieNode(), normalize: normalize}
}

// BuildTrie inserts every corpus Record into a new Trie.
func BuildTrie(corpus []Record, normalize Normalizer) *Trie {
	t := NewTrie(normalize)
	for _, rec := range corpus {
		t.Insert(rec)
	}
	return t
}

// Insert adds rec under the normalized form of rec.Word.
func (t *Trie) Insert(rec Record) {
	t.insertKey(t.normalize(rec.Word), rec)
}

// insertKey walks or extends one edge per rune of key and attaches rec to the
// final node. Records sharing a spelling are all kept; an identical Record is
// stored once.
func (t *Trie) insertKey(key string, rec Record) {
	current := t.root
	for _, r := range key {
		next, ok := current.children[r]
		if !ok {
			next = newTrieNode()
			current.children[r] = next
		}
		current = next
	}
	if !current.terminal {
		current.terminal = true
		t.keys++
	}
	for _, existing := range current.records {
		if existing == rec {
			return
		}
	}
	current.records = append(current.records, rec)
}

// Get returns the Records stored under exactly word.
func (t *Trie) Get(word string) []Record {
	node := t.walk(t.normalize(word))
	if node == nil || !node.terminal {
		return []Record{}
	}
	return append([]Record(nil), node.records...)
}

// FindWithPrefix returns every Record whose normalized word starts with prefix.
// An empty prefix returns the whole trie.
func (t *Trie) FindWithPrefix(prefix string) []Record {
	return t.findKeyPrefix(t.normalize(prefix))
}

func (t *Trie) findKeyPrefix(key string) []Record {
	node := t.walk(key)
	if node == nil {
		return []Record{}
	}
	results := []Record{}
	collect(node, &results)
	return results
}

// FindWithPattern returns every Record whose normalized word has exactly as many
// runes as pattern and matches it position by position. '_' and '?' match any rune.
func (t *Trie) FindWithPattern(pattern string) []Record {
	results := []Record{}
	matchPattern(t.root, []rune(t.normalize(pattern)), 0, &results)
	return results
}

// Len returns the number of distinct keys in the trie.
func (t *Trie) Len() int {
	return t.keys
}

func (t *Trie) walk(key string) *trieNode {
	current := t.root
	for _, r := range key {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// collect performs a DFS of node's subtree, appending every terminal Record.
func collect(node *trieNode, results *[]Record) {
	if node.terminal {
		*results = append(*results, node.records...)
	}
	for _, child := range node.children {
		collect(child, results)
	}
}

func matchPattern(node *trieNode, pattern []rune, index int, results *[]Record) {
	if index == len(pattern) {
		if node.terminal {
			*results = append(*results, node.records...)
		}
		return
	}

	c := pattern[index]
	if IsWildcard(c) {
		for _, child := range node.children {
			matchPattern(child, pattern, index+1, results)
		}
		return
	}
	if next, ok := node.children[c]; ok {
		matchPattern(next, pattern, index+1, results)
	}
}
