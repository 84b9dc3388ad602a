package lexer

import (
	"strings"

	"lambdalex/internal/token"
)

// scanString: "..." с escape-последовательностями из таблицы escapes.
// Незакрытая строка доходит до конца входа и падает с ErrOutOfInput.
func (lx *Lexer) scanString() (token.Token, bool, error) {
	if lx.cursor.Peek() != quote {
		return token.Token{}, false, nil
	}
	_, _ = lx.cursor.Advance() // открывающая кавычка

	var buf strings.Builder
	escaped := false
	for escaped || lx.cursor.Peek() != quote {
		raw, err := lx.cursor.Advance()
		if err != nil {
			return token.Token{}, false, err
		}
		switch {
		case escaped:
			buf.WriteRune(unescape(raw))
			escaped = false
		case raw == escapeIntro:
			escaped = true
		default:
			buf.WriteRune(raw)
		}
	}
	_, _ = lx.cursor.Advance() // закрывающая кавычка

	return token.Token{Kind: token.String, Text: buf.String()}, true, nil
}
