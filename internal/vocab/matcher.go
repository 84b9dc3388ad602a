package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContinuation is returned by Consume when the symbol labels no
// edge from the current node.
var ErrInvalidContinuation = errors.New("invalid continuation")

// Matcher walks a Trie one symbol at a time.
type Matcher struct {
	trie *Trie
	node *node
	text strings.Builder
}

// NewMatcher returns a Matcher positioned at the root of t.
func NewMatcher(t *Trie) *Matcher {
	m := &Matcher{trie: t}
	return m.Reset()
}

// Reset returns the traversal to the root and clears the accumulated text.
// It is idempotent and returns m for chaining.
func (m *Matcher) Reset() *Matcher {
	m.node = m.trie.root
	m.text.Reset()
	return m
}

// CanContinueWith reports whether sym labels an edge from the current node.
// CanContinueWith(End) reports whether Text() is a complete word.
func (m *Matcher) CanContinueWith(sym Symbol) bool {
	_, ok := m.node.children[sym]
	return ok
}

// Consume advances along sym and returns the accumulated text. End moves
// the traversal but leaves the text unchanged.
func (m *Matcher) Consume(sym Symbol) (string, error) {
	next, ok := m.node.children[sym]
	if !ok {
		return m.text.String(), fmt.Errorf("%w: %s after %q", ErrInvalidContinuation, sym, m.text.String())
	}
	m.node = next
	if !sym.end {
		m.text.WriteRune(sym.ch)
	}
	return m.text.String(), nil
}

// Text returns the characters consumed since the last Reset.
func (m *Matcher) Text() string {
	return m.text.String()
}

// Consumed reports whether at least one character was consumed since Reset.
func (m *Matcher) Consumed() bool {
	return m.text.Len() > 0
}
