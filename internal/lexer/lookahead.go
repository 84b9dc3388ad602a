package lexer

import "lambdalex/internal/token"

// lookahead: одноэлементный буфер для токена. full отличает "пусто" от
// законно нулевого токена (пустая строка, число 0).
type lookahead struct {
	tok  token.Token
	full bool
}

func (l *lookahead) hold(tok token.Token) {
	l.tok = tok
	l.full = true
}

func (l *lookahead) peek() (token.Token, bool) {
	return l.tok, l.full
}

func (l *lookahead) take() (token.Token, bool) {
	tok, ok := l.tok, l.full
	*l = lookahead{}
	return tok, ok
}
