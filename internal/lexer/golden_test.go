package lexer_test

import (
	"bufio"
	"bytes"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"lambdalex/internal/lexer"
	"lambdalex/internal/source"
)

// Каждый архив testdata/*.txtar содержит input.lam и tokens (по токену на
// строку). Заголовок Should-Error задаёт ожидаемую ошибку после токенов.
func TestGoldenArchives(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden archives found")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			runGolden(t, file)
		})
	}
}

func runGolden(t *testing.T, file string) {
	archive, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("error reading golden archive: %s", err)
	}
	read := textproto.NewReader(bufio.NewReader(bytes.NewReader(archive.Comment)))
	header, err := read.ReadMIMEHeader()
	if err != nil && len(header) == 0 && len(bytes.TrimSpace(archive.Comment)) != 0 {
		t.Fatalf("error reading archive directives: %s", err)
	}

	var input, want []byte
	for _, f := range archive.Files {
		switch f.Name {
		case "input.lam":
			input = f.Data
		case "tokens":
			want = f.Data
		}
	}
	if input == nil {
		t.Fatal("archive has no input.lam")
	}

	fs := source.NewFileSet()
	id := fs.AddVirtual("input.lam", input)
	toks, lexErr := lexer.New(fs.Get(id), lexer.Options{}).All()

	var got bytes.Buffer
	for _, tok := range toks {
		got.WriteString(tok.String())
		got.WriteByte('\n')
	}
	if got.String() != string(want) {
		t.Errorf("tokens mismatch\n--- got\n%s--- want\n%s", got.String(), want)
	}

	expectErr := header.Get("Should-Error")
	switch {
	case expectErr == "" && lexErr != nil:
		t.Errorf("unexpected error: %s", lexErr)
	case expectErr != "" && lexErr == nil:
		t.Errorf("expected error %q, got none", expectErr)
	case expectErr != "" && lexErr.Error() != expectErr:
		t.Errorf("error = %q, want %q", lexErr.Error(), expectErr)
	}
}
