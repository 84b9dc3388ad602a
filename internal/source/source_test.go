package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddKeepsEveryVersion(t *testing.T) {
	fs := NewFileSet()
	first := fs.Add("x.lam", []byte("v1"), 0)
	second := fs.Add("./x.lam", []byte("v2"), 0)

	if first == second {
		t.Fatalf("expected distinct ids, both are %d", first)
	}
	if got := string(fs.Get(first).Content); got != "v1" {
		t.Errorf("first file content changed to %q", got)
	}
	if fs.Get(second).Path != "x.lam" {
		t.Errorf("path not cleaned: %q", fs.Get(second).Path)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestLineStarts(t *testing.T) {
	tests := []struct {
		in   string
		want []uint32
	}{
		{"", []uint32{0}},
		{"\n", []uint32{0, 1}},
		{"a\nb\n", []uint32{0, 2, 4}},
		{"λ\nx", []uint32{0, 3}},
	}
	for _, tt := range tests {
		got := lineStarts([]byte(tt.in))
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		want  string
		flags FileFlags
	}{
		{"plain", []byte("λx. x"), "λx. x", 0},
		{"bom", []byte("\xEF\xBB\xBFx\n"), "x\n", FileHadBOM},
		{"crlf", []byte("a\r\nb\r\n"), "a\nb\n", FileNormalizedCRLF},
		{"lone cr", []byte("a\rb"), "a\rb", 0},
		{"nfc", []byte("e\u0301"), "\u00e9", FileNormalizedNFC},
		{"all", []byte("\xEF\xBB\xBFe\u0301\r\n"), "\u00e9\n", FileHadBOM | FileNormalizedCRLF | FileNormalizedNFC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags := normalize(tt.in)
			if string(got) != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Errorf("flags = %04b, want %04b", flags, tt.flags)
			}
		})
	}
}

func TestLineColCountsRunes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.lam", []byte("λx\nab"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 2}}, // после λ
		{3, LineCol{1, 3}}, // на \n
		{4, LineCol{2, 1}},
		{6, LineCol{2, 3}},
		{99, LineCol{2, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.lam", []byte("first\nsecond\n")))

	want := map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: ""}
	for n, w := range want {
		if got := f.Line(n); got != w {
			t.Errorf("Line(%d) = %q, want %q", n, got, w)
		}
	}
	if f.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", f.LineCount())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lam")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q", f.Content)
	}
	if !f.Flags.Has(FileHadBOM|FileNormalizedCRLF) || f.Flags.Has(FileNormalizedNFC) || f.Flags.Has(FileVirtual) {
		t.Errorf("flags = %04b", f.Flags)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.lam")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSpan(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	if got := a.Cover(Span{File: 1, Start: 2, End: 5}); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, End: 100}); got != a {
		t.Errorf("cross-file Cover = %v", got)
	}
	if a.Len() != 4 || a.Empty() || !a.Contains(4) || a.Contains(8) {
		t.Errorf("unexpected shape for %v", a)
	}
	if a.String() != "1:4-8" {
		t.Errorf("String = %q", a.String())
	}

	f := &File{Content: []byte("id = λ x x")}
	if got := (Span{Start: 5, End: 7}).Text(f); got != "λ" {
		t.Errorf("Text = %q", got)
	}
	if got := (Span{Start: 9, End: 40}).Text(f); got != "x" {
		t.Errorf("clamped Text = %q", got)
	}
}

func TestFormatPath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	inside := &File{Path: filepath.ToSlash(filepath.Join(base, "nested", "f.lam"))}
	outside := &File{Path: filepath.ToSlash(filepath.Join(tmp, "other", "f.lam"))}

	if got := inside.FormatPath("relative", base); got != "nested/f.lam" {
		t.Errorf("relative inside = %q", got)
	}
	if got := outside.FormatPath("relative", base); got != outside.Path {
		t.Errorf("relative outside should fall back to absolute, got %q", got)
	}
	if got := inside.FormatPath("basename", ""); got != "f.lam" {
		t.Errorf("basename = %q", got)
	}
	short := &File{Path: "src/a.lam"}
	if got := short.FormatPath("auto", ""); got != "src/a.lam" {
		t.Errorf("auto short = %q", got)
	}
	if got := short.FormatPath("bogus", ""); got != "src/a.lam" {
		t.Errorf("unknown mode = %q", got)
	}
}
