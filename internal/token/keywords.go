package token

import "slices"

// LambdaGlyph is the single non-ASCII character the language accepts; it is
// shorthand for the "lambda" keyword.
const LambdaGlyph = 'λ'

// LambdaKeyword is the keyword text produced for LambdaGlyph.
const LambdaKeyword = "lambda"

// Keywords lists the reserved words. Регистрозависимые.
var Keywords = []string{
	LambdaKeyword,
	"if",
	"then",
	"else",
}

// Operators lists the reserved operator sequences. "!" is only a prefix of "!=".
var Operators = []string{
	"=",
	"+",
	"!=",
	"==",
	"-",
	"/",
	"*",
	"<",
	">",
}

// Delimiters lists the single-character punctuation tokens.
var Delimiters = []rune{'{', '}', '(', ')', ',', ';'}

var keywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Keywords))
	for _, kw := range Keywords {
		m[kw] = struct{}{}
	}
	return m
}()

// LookupKeyword reports whether ident is a reserved word.
func LookupKeyword(ident string) bool {
	_, ok := keywordSet[ident]
	return ok
}

// IsPunctuation reports whether r is a punctuation character.
func IsPunctuation(r rune) bool {
	return slices.Contains(Delimiters, r)
}
