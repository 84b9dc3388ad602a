package lexer

import (
	"errors"

	"lambdalex/internal/diag"
)

// CodeOf maps an error kind to its diagnostic code.
func CodeOf(err error) diag.Code {
	switch {
	case errors.Is(err, ErrUnrecognizedCharacter):
		return diag.LexUnrecognizedChar
	case errors.Is(err, ErrOutOfInput):
		return diag.LexOutOfInput
	case errors.Is(err, ErrInvalidContinuation):
		return diag.LexInvalidContinuation
	case errors.Is(err, ErrInvalidNumericLiteral):
		return diag.LexInvalidNumber
	default:
		return diag.UnknownCode
	}
}

// Diagnostic converts a lexical error into an error-severity diagnostic.
// The message omits the "line:column" prefix; formatters render the position from the span.
func Diagnostic(err *Error) diag.Diagnostic {
	return diag.New(diag.SevError, CodeOf(err), err.Span, err.Msg)
}

// KindOf is the inverse of CodeOf; nil for codes that are not lexical.
func KindOf(code diag.Code) error {
	switch code {
	case diag.LexUnrecognizedChar:
		return ErrUnrecognizedCharacter
	case diag.LexOutOfInput:
		return ErrOutOfInput
	case diag.LexInvalidContinuation:
		return ErrInvalidContinuation
	case diag.LexInvalidNumber:
		return ErrInvalidNumericLiteral
	default:
		return nil
	}
}
