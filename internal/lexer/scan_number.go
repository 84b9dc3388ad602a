package lexer

import (
	"errors"
	"strconv"

	"lambdalex/internal/token"
)

// scanNumber: только десятичные формы: 0, 016, 1.21, .5, 1.
// Вторая точка или не-цифра после точки завершают число.
func (lx *Lexer) scanNumber() (token.Token, bool, error) {
	if !isDigitOrDot(lx.cursor.Peek()) {
		return token.Token{}, false, nil
	}
	start := lx.cursor.Mark()

	acceptDot := true
	for {
		r := lx.cursor.Peek()
		if !(isDigit(r) || (acceptDot && r == '.')) {
			break
		}
		_, _ = lx.cursor.Advance()
		if r == '.' {
			acceptDot = false
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := sp.Text(lx.file)
	value, err := strconv.ParseFloat(text, 64)
	// переполнение даёт ±Inf, это допустимое значение
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.Token{}, false, lx.cursor.Fail(
			ErrInvalidNumericLiteral,
			expectedMsg("number continuation", lx.cursor.Peek()),
		)
	}
	return token.Token{Kind: token.Number, Text: text, Number: value}, true, nil
}
