package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lambdalex/internal/source"
	"lambdalex/internal/token"
)

// CheckTokenSpans runs a minimal set of span invariants on a token stream:
// 1) every span points to sf and is non-empty
// 2) spans lie within the file content
// 3) spans are strictly ordered and do not overlap
// 4) the source text under a keyword, punctuation or operator span is its lexeme
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d has empty span: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d overlaps previous: starts at %d, previous ends at %d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End

		text := sp.Text(sf)
		switch tok.Kind {
		case token.Punctuation, token.Operator:
			if text != tok.Text {
				return fmt.Errorf("token %d (%s) covers %q", i, tok, text)
			}
		case token.Keyword:
			// λ: тоже ключевое слово lambda
			if text != tok.Text && !(tok.Text == token.LambdaKeyword && text == string(token.LambdaGlyph)) {
				return fmt.Errorf("token %d (%s) covers %q", i, tok, text)
			}
		}
	}
	return nil
}
