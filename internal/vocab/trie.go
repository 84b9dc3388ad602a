package vocab

import "fmt"

// Symbol is one edge label of the prefix tree: a character or the end marker.
type Symbol struct {
	ch  rune
	end bool
}

// End marks the end of a word. A node is terminal iff it has an End edge.
var End = Symbol{end: true}

// Char wraps a character as a Symbol. Any rune value is accepted; runes that
// label no edge simply fail CanContinueWith.
func Char(r rune) Symbol { return Symbol{ch: r} }

// IsEnd reports whether s is the end marker.
func (s Symbol) IsEnd() bool { return s.end }

// Rune returns the wrapped character (meaningless for End).
func (s Symbol) Rune() rune { return s.ch }

func (s Symbol) String() string {
	if s.end {
		return "<end>"
	}
	return fmt.Sprintf("%q", s.ch)
}

type node struct {
	children map[Symbol]*node
}

func newNode() *node {
	return &node{children: make(map[Symbol]*node)}
}

// child возвращает потомка по символу, создавая его при необходимости.
func (n *node) child(sym Symbol) *node {
	next, ok := n.children[sym]
	if !ok {
		next = newNode()
		n.children[sym] = next
	}
	return next
}

// Trie is the immutable prefix structure shared by Matchers.
type Trie struct {
	root  *node
	words int
}

// NewTrie inserts every word as its characters followed by End.
// Duplicate words share one path.
func NewTrie(words []string) *Trie {
	t := &Trie{root: newNode()}
	for _, w := range words {
		n := t.root
		for _, r := range w {
			n = n.child(Char(r))
		}
		if _, dup := n.children[End]; !dup {
			t.words++
		}
		n.child(End)
	}
	return t
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int { return t.words }

// Contains reports whether word is a complete member of the vocabulary.
func (t *Trie) Contains(word string) bool {
	m := NewMatcher(t)
	for _, r := range word {
		if _, err := m.Consume(Char(r)); err != nil {
			return false
		}
	}
	return m.CanContinueWith(End)
}
