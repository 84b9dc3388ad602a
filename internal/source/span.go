package source

import (
	"strconv"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) within one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.End <= s.Start }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether off falls inside the span.
func (s Span) Contains(off uint32) bool { return off >= s.Start && off < s.End }

// Cover widens s to include other. Spans of different files are left alone.
func (s Span) Cover(other Span) Span {
	if other.File != s.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}

// Text returns the bytes of f covered by the span, clamped to the content.
func (s Span) Text(f *File) string {
	n := safecast.MustConv[uint32](len(f.Content))
	lo, hi := min(s.Start, n), min(s.End, n)
	if hi < lo {
		return ""
	}
	return string(f.Content[lo:hi])
}

func (s Span) String() string {
	var b []byte
	b = strconv.AppendUint(b, uint64(s.File), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(s.Start), 10)
	b = append(b, '-')
	b = strconv.AppendUint(b, uint64(s.End), 10)
	return string(b)
}
