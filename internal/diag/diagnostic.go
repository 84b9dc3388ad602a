package diag

import (
	"fmt"

	"lambdalex/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

// Errorf builds an error-severity diagnostic with a formatted message.
func Errorf(code Code, primary source.Span, format string, args ...any) Diagnostic {
	return New(SevError, code, primary, fmt.Sprintf(format, args...))
}

// Warningf builds a warning-severity diagnostic with a formatted message.
func Warningf(code Code, primary source.Span, format string, args ...any) Diagnostic {
	return New(SevWarning, code, primary, fmt.Sprintf(format, args...))
}

// WithNote returns a copy of d with one more note; d itself is not touched.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}

// identity is what makes two diagnostics "the same" for deduplication.
type identity struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func (d Diagnostic) identity() identity {
	return identity{code: d.Code, sev: d.Severity, span: d.Primary, msg: d.Message}
}
