package diagfmt

import (
	"encoding/json"
	"io"

	"lambdalex/internal/diag"
	"lambdalex/internal/source"
)

// Position is a 1-based line and rune column.
type Position struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// Location points into a file by byte range and, optionally, by line/column.
type Location struct {
	File  string    `json:"file"`
	Bytes [2]uint32 `json:"bytes"`
	Start *Position `json:"start,omitempty"`
	End   *Position `json:"end,omitempty"`
}

type NoteEntry struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

type Entry struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Location Location    `json:"location"`
	Notes    []NoteEntry `json:"notes,omitempty"`
}

// Report is the document written by JSON.
type Report struct {
	Diagnostics []Entry `json:"diagnostics"`
	Count       int     `json:"count"`
	// Dropped counts diagnostics that did not fit into the bag limit.
	Dropped int `json:"dropped,omitempty"`
}

type locator struct {
	fs        *source.FileSet
	mode      PathMode
	positions bool
}

func (l locator) locate(sp source.Span) Location {
	loc := Location{
		File:  formatPath(l.fs, l.fs.Get(sp.File), l.mode),
		Bytes: [2]uint32{sp.Start, sp.End},
	}
	if l.positions {
		start, end := l.fs.Resolve(sp)
		loc.Start = &Position{Line: start.Line, Col: start.Col}
		loc.End = &Position{Line: end.Line, Col: end.Col}
	}
	return loc
}

// BuildReport converts the bag into its JSON shape without encoding it.
func BuildReport(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) Report {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	loc := locator{fs: fs, mode: opts.PathMode, positions: opts.IncludePositions}

	rep := Report{Diagnostics: make([]Entry, 0, len(items)), Dropped: bag.Dropped()}
	for _, d := range items {
		e := Entry{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: loc.locate(d.Primary),
		}
		// тайминги без заметки бессмысленны
		if opts.IncludeNotes || d.Code == diag.ObsTimings {
			for _, n := range d.Notes {
				e.Notes = append(e.Notes, NoteEntry{Message: n.Msg, Location: loc.locate(n.Span)})
			}
		}
		rep.Diagnostics = append(rep.Diagnostics, e)
	}
	rep.Count = len(rep.Diagnostics)
	return rep
}

// JSON writes the bag as one indented Report document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(bag, fs, opts))
}
