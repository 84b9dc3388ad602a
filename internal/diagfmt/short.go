package diagfmt

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strconv"
	"strings"

	"lambdalex/internal/diag"
	"lambdalex/internal/source"
)

// ShortOpts configures the one-line-per-diagnostic output.
type ShortOpts struct {
	PathMode PathMode
	Notes    bool // печатать заметки отдельными строками "note"
}

type shortLine struct {
	path      string
	line, col uint32
	kind      string
	code      string
	msg       string
}

func (l shortLine) compare(o shortLine) int {
	return cmp.Or(
		strings.Compare(l.path, o.path),
		cmp.Compare(l.line, o.line),
		cmp.Compare(l.col, o.col),
		strings.Compare(l.kind, o.kind),
		strings.Compare(l.code, o.code),
		strings.Compare(l.msg, o.msg),
	)
}

// Short writes every diagnostic as
//
//	<severity> <CODE> <path>:<line>:<col> <message>
//
// sorted by position so the output is stable across runs. Messages are
// folded onto one line.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts ShortOpts) error {
	var lines []shortLine
	add := func(kind string, code diag.Code, sp source.Span, msg string) {
		if int(sp.File) >= fs.Len() {
			return
		}
		start, _ := fs.Resolve(sp)
		lines = append(lines, shortLine{
			path: formatPath(fs, fs.Get(sp.File), opts.PathMode),
			line: start.Line,
			col:  start.Col,
			kind: kind,
			code: code.ID(),
			msg:  oneLine(msg),
		})
	}
	for _, d := range bag.Items() {
		add(d.Severity.Label(), d.Code, d.Primary, d.Message)
		if opts.Notes {
			for _, n := range d.Notes {
				add("note", d.Code, n.Span, n.Msg)
			}
		}
	}
	slices.SortStableFunc(lines, shortLine.compare)

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l.kind)
		bw.WriteByte(' ')
		bw.WriteString(l.code)
		bw.WriteByte(' ')
		bw.WriteString(l.path)
		bw.WriteByte(':')
		bw.WriteString(strconv.FormatUint(uint64(l.line), 10))
		bw.WriteByte(':')
		bw.WriteString(strconv.FormatUint(uint64(l.col), 10))
		bw.WriteByte(' ')
		bw.WriteString(l.msg)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
}
