package lexer

// skip снимает пробельные символы и комментарии "# ... до \n".
// Перевод строки, закрывающий комментарий, уходит как пробел на следующем круге.
func (lx *Lexer) skip() {
	for lx.skipWhitespace() || lx.skipComment() {
	}
}

func (lx *Lexer) skipWhitespace() bool {
	if !isWhitespace(lx.cursor.Peek()) {
		return false
	}
	for isWhitespace(lx.cursor.Peek()) {
		_, _ = lx.cursor.Advance()
	}
	return true
}

func (lx *Lexer) skipComment() bool {
	if lx.cursor.Peek() != commentStart {
		return false
	}
	for !lx.cursor.AtEnd() && lx.cursor.Peek() != '\n' {
		_, _ = lx.cursor.Advance()
	}
	return true
}
