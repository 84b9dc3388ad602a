package lexer

import "unicode"

// ===== Классификаторы =====

// isWhitespace matches the ECMAScript \s class: ASCII \t \n \v \f \r and
// space, plus the Unicode space separators and U+FEFF. U+0085 is excluded.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return r > 0x7f && unicode.IsSpace(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isDigitOrDot(r rune) bool { return isDigit(r) || r == '.' }

// isWordChar: только ASCII [A-Za-z0-9_].
func isWordChar(r rune) bool {
	return r == '_' || isDigit(r) || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

const (
	commentStart = '#'
	quote        = '"'
	escapeIntro  = '\\'
)

var escapes = map[rune]rune{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'f': '\f',
	'v': '\v',
	'0': 0,
}

// unescape is total: symbols missing from the table stand for themselves.
func unescape(r rune) rune {
	if out, ok := escapes[r]; ok {
		return out
	}
	return r
}
