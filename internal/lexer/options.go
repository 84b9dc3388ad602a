package lexer

import "lambdalex/internal/diag"

type Options struct {
	// Reporter может быть nil: тогда ошибка только возвращается вызывающему.
	Reporter diag.Reporter
}

func (lx *Lexer) report(e *Error) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(Diagnostic(e))
	}
}
