package source

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
)

func lineStarts(content []byte) []uint32 {
	starts := []uint32{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, safecast.MustConv[uint32](i+1))
		}
	}
	return starts
}

// LineCol maps a byte offset to its line and rune column. Offsets past the
// end resolve against the end of the content.
func (f *File) LineCol(off uint32) LineCol {
	off = min(off, safecast.MustConv[uint32](len(f.Content)))
	// последняя строка, начало которой не правее off
	idx := sort.Search(len(f.Lines), func(i int) bool { return f.Lines[i] > off }) - 1
	idx = max(idx, 0)
	start := f.Lines[idx]
	return LineCol{
		Line: safecast.MustConv[uint32](idx + 1),
		Col:  safecast.MustConv[uint32](utf8.RuneCount(f.Content[start:off]) + 1),
	}
}

// LineCount returns the number of lines; a trailing newline opens an empty last line.
func (f *File) LineCount() int { return len(f.Lines) }

// Line returns the text of the 1-based line n without its newline, or "" when
// n is out of range.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > len(f.Lines) {
		return ""
	}
	start := f.Lines[n-1]
	end := safecast.MustConv[uint32](len(f.Content))
	if int(n) < len(f.Lines) {
		end = f.Lines[n] - 1
	}
	return string(f.Content[start:end])
}
