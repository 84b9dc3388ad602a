// Package vocab recognises words from a fixed, closed vocabulary one symbol
// at a time without backtracking.
//
// A Trie is built once from the word list and is read-only afterwards, so a
// single Trie may back any number of Matchers on any number of goroutines.
// A Matcher is the per-use traversal state: the current node and the text
// accumulated so far. It is not safe for concurrent use.
//
// Recognition separates "could continue" from "is complete":
//
//	m.Reset()
//	for m.CanContinueWith(vocab.Char(next())) {
//		m.Consume(vocab.Char(advance()))
//	}
//	if m.CanContinueWith(vocab.End) {
//		// m.Text() is a whole word
//	}
//
// The end-of-word marker is an ordinary member of the symbol alphabet, so
// "is `if` complete" and "is `i` a prefix of `if`" are answered by the same
// structure.
package vocab
