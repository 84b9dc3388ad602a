package lexer

import (
	"errors"

	"lambdalex/internal/source"
	"lambdalex/internal/token"
	"lambdalex/internal/vocab"
)

// Префиксные деревья неизменяемы после построения, поэтому общие на процесс.
var (
	keywordTrie  = vocab.NewTrie(token.Keywords)
	operatorTrie = vocab.NewTrie(token.Operators)
)

// Lexer turns one source file into tokens with a single token of lookahead.
// After the first error the Lexer is unusable: every later call returns that error.
type Lexer struct {
	file      *source.File
	cursor    Cursor
	opts      Options
	keywords  *vocab.Matcher
	operators *vocab.Matcher
	look      lookahead // 1 элементный буфер для токена
	err       *Error
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:      file,
		cursor:    NewCursor(file),
		opts:      opts,
		keywords:  vocab.NewMatcher(keywordTrie),
		operators: vocab.NewMatcher(operatorTrie),
	}
	lx.skip()
	return lx
}

// FromString builds a Lexer over an in-memory snippet.
func FromString(src string) *Lexer {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return New(fs.Get(id), Options{})
}

// File returns the source the Lexer reads.
func (lx *Lexer) File() *source.File { return lx.file }

// Next возвращает следующий токен и сдвигает курсор к началу следующего.
// На конце входа возвращает ошибку ErrOutOfInput.
func (lx *Lexer) Next() (token.Token, error) {
	if tok, ok := lx.look.take(); ok {
		lx.skip()
		return tok, nil
	}
	tok, err := lx.recognize()
	if err != nil {
		return token.Token{}, err
	}
	lx.skip()
	return tok, nil
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if tok, ok := lx.look.peek(); ok {
		return tok, nil
	}
	tok, err := lx.recognize()
	if err != nil {
		return token.Token{}, err
	}
	lx.look.hold(tok)
	return tok, nil
}

// AtEnd reports whether no tokens remain.
func (lx *Lexer) AtEnd() bool {
	_, pending := lx.look.peek()
	return lx.cursor.AtEnd() && !pending
}

// All drains the Lexer.
func (lx *Lexer) All() ([]token.Token, error) {
	var toks []token.Token
	for !lx.AtEnd() {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// recognize пробует классы по порядку: строка, число, ключевое слово или
// идентификатор, пунктуация, оператор.
func (lx *Lexer) recognize() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	if lx.cursor.AtEnd() {
		return token.Token{}, lx.fail(ErrOutOfInput, outOfInputMsg)
	}

	start := lx.cursor.Mark()
	scanners := [...]func() (token.Token, bool, error){
		lx.scanString,
		lx.scanNumber,
		lx.scanIdentOrKeyword,
		lx.scanPunct,
		lx.scanOperator,
	}
	for _, scan := range scanners {
		tok, ok, err := scan()
		if err != nil {
			return token.Token{}, lx.failed(err)
		}
		if ok {
			tok.Span = lx.cursor.SpanFrom(start)
			return tok, nil
		}
	}
	return token.Token{}, lx.fail(ErrUnrecognizedCharacter, unexpectedMsg(lx.cursor.Peek()))
}

func (lx *Lexer) fail(kind error, msg string) *Error {
	return lx.failed(lx.cursor.Fail(kind, msg))
}

// failed запоминает ошибку и отдаёт её репортеру один раз.
func (lx *Lexer) failed(err error) *Error {
	var e *Error
	if !errors.As(err, &e) {
		e = lx.cursor.Fail(err, err.Error())
	}
	lx.err = e
	lx.report(e)
	return e
}
