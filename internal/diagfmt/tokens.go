package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"lambdalex/internal/source"
	"lambdalex/internal/token"
)

// PositionOutput is a 1-based line and rune column.
type PositionOutput struct {
	Line uint32 `json:"line" msgpack:"line"`
	Col  uint32 `json:"col" msgpack:"col"`
}

// TokenOutput is the serialised form of a token. Value is a float64 for
// numbers and a string otherwise.
type TokenOutput struct {
	Kind  string         `json:"kind" msgpack:"kind"`
	Value any            `json:"value" msgpack:"value"`
	Start PositionOutput `json:"start" msgpack:"start"`
	End   PositionOutput `json:"end" msgpack:"end"`
}

// FileTokensOutput groups the tokens of one file.
type FileTokensOutput struct {
	File   string        `json:"file" msgpack:"file"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// BuildTokensOutput converts tokens of one file into their serialised form.
func BuildTokensOutput(tokens []token.Token, fs *source.FileSet, mode PathMode) FileTokensOutput {
	out := FileTokensOutput{Tokens: make([]TokenOutput, 0, len(tokens))}
	if len(tokens) > 0 {
		out.File = formatPath(fs, fs.Get(tokens[0].Span.File), mode)
	}
	for _, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		out.Tokens = append(out.Tokens, TokenOutput{
			Kind:  tok.Kind.String(),
			Value: tok.Value(),
			Start: PositionOutput{Line: start.Line, Col: start.Col},
			End:   PositionOutput{Line: end.Line, Col: end.Col},
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		var value string
		if tok.Kind == token.Number {
			value = fmt.Sprint(tok.Number)
		} else {
			value = fmt.Sprintf("%q", tok.Text)
		}
		if _, err := fmt.Fprintf(w, "%3d: %-12s %-16s at %d:%d-%d:%d\n",
			i+1, tok.Kind, value,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col,
		); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet, mode PathMode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens, fs, mode))
}

// FormatTokensMsgpack пишет токены одним msgpack-объектом FileTokensOutput.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet, mode PathMode) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildTokensOutput(tokens, fs, mode))
}

// DecodeTokensMsgpack reads one FileTokensOutput written by FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) (FileTokensOutput, error) {
	var out FileTokensOutput
	err := msgpack.NewDecoder(r).Decode(&out)
	return out, err
}
