package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lambdalex/internal/source"
)

// NoChar is what Peek returns at end of input. It is not a valid rune, so it
// never collides with a real character (including NUL).
const NoChar rune = -1

// Cursor представляет собой позицию в файле: смещение в байтах плюс
// строка (1-based) и колонка (0-based, в символах) для диагностик.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Line:  1,
		Limit: limit,
	}
}

// AtEnd проверяет, достигнут ли конец входа.
func (c *Cursor) AtEnd() bool {
	return c.Off >= c.Limit
}

// Peek returns the character at the current offset, or NoChar at end of input.
func (c *Cursor) Peek() rune {
	r, _ := c.decode()
	return r
}

func (c *Cursor) decode() (rune, uint32) {
	if c.AtEnd() {
		return NoChar, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	return r, safecast.MustConv[uint32](sz)
}

// Advance consumes and returns the current character, updating line/column.
// At end of input it fails with ErrOutOfInput and does not move.
func (c *Cursor) Advance() (rune, error) {
	r, sz := c.decode()
	if sz == 0 {
		return NoChar, c.Fail(ErrOutOfInput, outOfInputMsg)
	}
	c.Off += sz
	if r == '\n' {
		c.Line++
		c.Col = 0
	} else {
		c.Col++
	}
	return r, nil
}

// Fail builds a lexical error positioned at the current character.
func (c *Cursor) Fail(kind error, msg string) *Error {
	_, sz := c.decode()
	return &Error{
		Kind:   kind,
		Line:   c.Line,
		Column: c.Col,
		Span:   source.Span{File: c.File.ID, Start: c.Off, End: c.Off + sz},
		Msg:    msg,
	}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
