package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value; the scanner never emits it.
	Invalid Kind = iota
	// Keyword is a reserved word: lambda, if, then, else.
	Keyword
	// Identifier is a run of ASCII word characters that is not a keyword.
	Identifier
	// Number is a decimal numeric literal.
	Number
	// String is a double-quoted literal with escapes decoded.
	String
	// Punctuation is a single delimiter character.
	Punctuation
	// Operator is a reserved operator sequence.
	Operator
)

var kindNames = [...]string{
	Invalid:     "invalid",
	Keyword:     "keyword",
	Identifier:  "identifier",
	Number:      "number",
	String:      "string",
	Punctuation: "punctuation",
	Operator:    "operator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Invalid, false
}
