package lexer

import (
	"errors"
	"fmt"

	"lambdalex/internal/source"
	"lambdalex/internal/vocab"
)

// Error kinds. Every *Error unwraps to exactly one of them.
var (
	// ErrOutOfInput: an operation needed one more character than remained.
	ErrOutOfInput = errors.New("out of input")
	// ErrInvalidContinuation: a reserved operator prefix was not completed ("!" alone).
	ErrInvalidContinuation = vocab.ErrInvalidContinuation
	// ErrInvalidNumericLiteral: a numeral-shaped run failed to parse.
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	// ErrUnrecognizedCharacter: the next character starts no lexical class.
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// Error is a positioned lexical failure. Line is 1-based, Column is 0-based
// and both point at the character that was peeked when the failure happened.
type Error struct {
	Kind   error
	Line   uint32
	Column uint32
	Span   source.Span
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d - %s", e.Line, e.Column, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// quoteFound renders the character a failure was found at; "" at end of input.
func quoteFound(r rune) string {
	if r == NoChar {
		return `""`
	}
	return fmt.Sprintf("%q", string(r))
}

func expectedMsg(expectation string, found rune) string {
	return fmt.Sprintf("Expected %s, found %s.", expectation, quoteFound(found))
}

func unexpectedMsg(found rune) string {
	return fmt.Sprintf("Encountered unexpected character %s.", quoteFound(found))
}

const outOfInputMsg = "Unexpected end of input."
