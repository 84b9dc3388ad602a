package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lambdalex/internal/vocab"
)

var keywords = []string{"lambda", "if", "then", "else"}

var operators = []string{"=", "+", "!=", "==", "-", "/", "*", "<", ">"}

// feed consumes s greedily and reports the accumulated text.
func feed(m *vocab.Matcher, s string) string {
	for _, r := range s {
		if !m.CanContinueWith(vocab.Char(r)) {
			break
		}
		if _, err := m.Consume(vocab.Char(r)); err != nil {
			panic(err)
		}
	}
	return m.Text()
}

func TestTrieContains(t *testing.T) {
	t.Parallel()

	trie := vocab.NewTrie(keywords)
	assert.Equal(t, 4, trie.Len())
	for _, kw := range keywords {
		assert.True(t, trie.Contains(kw), kw)
	}
	for _, s := range []string{"", "l", "lamb", "lambdas", "i", "thenn", "Else"} {
		assert.False(t, trie.Contains(s), s)
	}
}

func TestTrieDuplicateWords(t *testing.T) {
	t.Parallel()

	trie := vocab.NewTrie([]string{"if", "if", "i"})
	assert.Equal(t, 2, trie.Len())
	assert.True(t, trie.Contains("i"))
	assert.True(t, trie.Contains("if"))
}

func TestPrefixVersusComplete(t *testing.T) {
	t.Parallel()

	m := vocab.NewMatcher(vocab.NewTrie(keywords))

	require.True(t, m.CanContinueWith(vocab.Char('i')))
	text, err := m.Consume(vocab.Char('i'))
	require.NoError(t, err)
	assert.Equal(t, "i", text)
	assert.False(t, m.CanContinueWith(vocab.End), "'i' is only a prefix of 'if'")

	text, err = m.Consume(vocab.Char('f'))
	require.NoError(t, err)
	assert.Equal(t, "if", text)
	assert.True(t, m.CanContinueWith(vocab.End), "'if' is a complete keyword")
	assert.False(t, m.CanContinueWith(vocab.Char('f')))
}

func TestCanContinueWithDoesNotMutate(t *testing.T) {
	t.Parallel()

	m := vocab.NewMatcher(vocab.NewTrie(keywords))
	for i := 0; i < 3; i++ {
		assert.True(t, m.CanContinueWith(vocab.Char('t')))
		assert.False(t, m.CanContinueWith(vocab.Char('x')))
		assert.False(t, m.CanContinueWith(vocab.End))
	}
	assert.Empty(t, m.Text())
	assert.False(t, m.Consumed())
}

func TestConsumeEndLeavesTextUnchanged(t *testing.T) {
	t.Parallel()

	m := vocab.NewMatcher(vocab.NewTrie(keywords))
	require.Equal(t, "else", feed(m, "else"))

	text, err := m.Consume(vocab.End)
	require.NoError(t, err)
	assert.Equal(t, "else", text)
	// после End рёбер нет
	assert.False(t, m.CanContinueWith(vocab.End))
}

func TestConsumeInvalidContinuation(t *testing.T) {
	t.Parallel()

	m := vocab.NewMatcher(vocab.NewTrie(operators))
	_, err := m.Consume(vocab.Char('!'))
	require.NoError(t, err)

	text, err := m.Consume(vocab.Char('!'))
	require.ErrorIs(t, err, vocab.ErrInvalidContinuation)
	assert.Equal(t, "!", text, "failed Consume must not move the traversal")
	assert.True(t, m.CanContinueWith(vocab.Char('=')))

	_, err = m.Consume(vocab.End)
	assert.ErrorIs(t, err, vocab.ErrInvalidContinuation, "'!' alone is not an operator")
}

func TestGreedyOperatorMatch(t *testing.T) {
	t.Parallel()

	m := vocab.NewMatcher(vocab.NewTrie(operators))
	tests := []struct {
		input    string
		want     string
		complete bool
	}{
		{"===", "==", true},
		{"=", "=", true},
		{"!=x", "!=", true},
		{"!", "!", false},
		{"<>", "<", true},
		{"x", "", false},
	}
	for _, tt := range tests {
		got := feed(m.Reset(), tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.complete, m.CanContinueWith(vocab.End), tt.input)
	}
}

func TestResetMidTraversal(t *testing.T) {
	t.Parallel()

	trie := vocab.NewTrie(keywords)
	used := vocab.NewMatcher(trie)
	feed(used, "lamb")
	require.Equal(t, "lamb", used.Text())

	used.Reset().Reset() // идемпотентно
	fresh := vocab.NewMatcher(trie)

	for _, input := range []string{"lambda", "then", "if", "elsewhere", "x"} {
		assert.Equal(t, feed(fresh.Reset(), input), feed(used.Reset(), input), input)
		assert.Equal(t, fresh.CanContinueWith(vocab.End), used.CanContinueWith(vocab.End), input)
	}
}

func TestSharedTrieIndependentMatchers(t *testing.T) {
	t.Parallel()

	trie := vocab.NewTrie(keywords)
	a := vocab.NewMatcher(trie)
	b := vocab.NewMatcher(trie)

	feed(a, "th")
	feed(b, "el")
	assert.Equal(t, "th", a.Text())
	assert.Equal(t, "el", b.Text())
	assert.True(t, a.CanContinueWith(vocab.Char('e')))
	assert.True(t, b.CanContinueWith(vocab.Char('s')))
}

func TestSymbolString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<end>", vocab.End.String())
	assert.Equal(t, "'λ'", vocab.Char('λ').String())
	assert.True(t, vocab.End.IsEnd())
	assert.False(t, vocab.Char(0).IsEnd())
	assert.Equal(t, 'x', vocab.Char('x').Rune())
}
