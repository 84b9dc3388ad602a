package diag

// Reporter receives diagnostics as they are produced. *Bag is the usual sink.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Unique forwards each distinct diagnostic to next once and drops repeats.
// The result is not safe for concurrent use.
func Unique(next Reporter) Reporter {
	if next == nil {
		return ReporterFunc(func(Diagnostic) {})
	}
	seen := make(map[identity]struct{})
	return ReporterFunc(func(d Diagnostic) {
		id := d.identity()
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		next.Report(d)
	})
}
