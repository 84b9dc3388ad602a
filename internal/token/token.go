package token

import (
	"fmt"
	"strconv"

	"lambdalex/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind   Kind
	Text   string  // keyword/identifier/punctuation/operator lexeme or decoded string
	Number float64 // значение для Kind == Number
	Span   source.Span
}

// Value returns the kind-dependent payload: float64 for numbers, string otherwise.
func (t Token) Value() any {
	if t.Kind == Number {
		return t.Number
	}
	return t.Text
}

// Equal compares kind and payload, ignoring the span.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == Number {
		return t.Number == other.Number
	}
	return t.Text == other.Text
}

// IsKeyword reports whether the token is the given keyword (any keyword if word is empty).
func (t Token) IsKeyword(word string) bool {
	return t.Kind == Keyword && (word == "" || t.Text == word)
}

// IsPunct reports whether the token is the given punctuation character.
func (t Token) IsPunct(ch string) bool { return t.Kind == Punctuation && t.Text == ch }

// IsOp reports whether the token is the given operator.
func (t Token) IsOp(op string) bool { return t.Kind == Operator && t.Text == op }

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("%s %s", t.Kind, strconv.FormatFloat(t.Number, 'g', -1, 64))
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
