package lexer

import (
	"lambdalex/internal/token"
	"lambdalex/internal/vocab"
)

func (lx *Lexer) scanPunct() (token.Token, bool, error) {
	r := lx.cursor.Peek()
	if !token.IsPunctuation(r) {
		return token.Token{}, false, nil
	}
	_, _ = lx.cursor.Advance()
	return token.Token{Kind: token.Punctuation, Text: string(r)}, true, nil
}

// scanOperator жадный: "===" это "==" и затем "=".
// Начатый, но не законченный оператор ("!") это ошибка, а не неизвестный символ.
func (lx *Lexer) scanOperator() (token.Token, bool, error) {
	m := lx.operators.Reset()
	for m.CanContinueWith(vocab.Char(lx.cursor.Peek())) {
		r, _ := lx.cursor.Advance()
		if _, err := m.Consume(vocab.Char(r)); err != nil {
			return token.Token{}, false, err
		}
	}
	if !m.Consumed() {
		return token.Token{}, false, nil
	}
	if !m.CanContinueWith(vocab.End) {
		return token.Token{}, false, lx.cursor.Fail(
			ErrInvalidContinuation,
			expectedMsg("operator continuation", lx.cursor.Peek()),
		)
	}
	return token.Token{Kind: token.Operator, Text: m.Text()}, true, nil
}
