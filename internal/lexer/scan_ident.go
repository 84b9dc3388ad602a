package lexer

import (
	"strings"

	"lambdalex/internal/token"
	"lambdalex/internal/vocab"
)

// scanIdentOrKeyword: сначала жадно идём по дереву ключевых слов, затем
// добираем символы слова. Ключевое слово засчитывается, только если за ним
// пробел или конец входа: "if(" даёт идентификатор "if".
func (lx *Lexer) scanIdentOrKeyword() (token.Token, bool, error) {
	if lx.cursor.Peek() == token.LambdaGlyph {
		_, _ = lx.cursor.Advance()
		return token.Token{Kind: token.Keyword, Text: token.LambdaKeyword}, true, nil
	}

	m := lx.keywords.Reset()
	for m.CanContinueWith(vocab.Char(lx.cursor.Peek())) {
		r, _ := lx.cursor.Advance()
		if _, err := m.Consume(vocab.Char(r)); err != nil {
			return token.Token{}, false, err
		}
	}
	if m.Consumed() && m.CanContinueWith(vocab.End) && lx.atWordEnd() {
		return token.Token{Kind: token.Keyword, Text: m.Text()}, true, nil
	}

	var buf strings.Builder
	buf.WriteString(m.Text())
	for isWordChar(lx.cursor.Peek()) {
		r, _ := lx.cursor.Advance()
		buf.WriteRune(r)
	}
	if buf.Len() == 0 {
		return token.Token{}, false, nil
	}
	return token.Token{Kind: token.Identifier, Text: buf.String()}, true, nil
}

func (lx *Lexer) atWordEnd() bool {
	return lx.cursor.AtEnd() || isWhitespace(lx.cursor.Peek())
}
