package observ

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Timer records named phases and counters for one run. It is safe for
// concurrent use and a nil *Timer ignores everything.
type Timer struct {
	mu       sync.Mutex
	phases   []phase
	counters []Counter
}

type phase struct {
	name    string
	started time.Time
	dur     time.Duration
	note    string
	open    bool
}

// Counter is a named running total such as tokens or cache.hit.
type Counter struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

func NewTimer() *Timer { return &Timer{} }

// Phase opens a phase and returns the function that closes it. The note
// passed to the closer is kept in the report; calling it twice is a no-op.
func (t *Timer) Phase(name string) (stop func(note string)) {
	if t == nil {
		return func(string) {}
	}
	t.mu.Lock()
	idx := len(t.phases)
	t.phases = append(t.phases, phase{name: name, started: time.Now(), open: true})
	t.mu.Unlock()

	return func(note string) {
		t.mu.Lock()
		defer t.mu.Unlock()
		p := &t.phases[idx]
		if !p.open {
			return
		}
		p.open = false
		p.dur = time.Since(p.started)
		p.note = note
	}
}

// Add increments a counter, creating it on first use.
func (t *Timer) Add(name string, delta int64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := slices.IndexFunc(t.counters, func(c Counter) bool { return c.Name == name }); i >= 0 {
		t.counters[i].Value += delta
		return
	}
	t.counters = append(t.counters, Counter{Name: name, Value: delta})
}

// Counter returns the current value of name, 0 if it was never added.
func (t *Timer) Counter(name string) int64 {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range t.counters {
		if c.Name == name {
			return c.Value
		}
	}
	return 0
}

// PhaseStat is one closed phase in a Report.
type PhaseStat struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is a snapshot of the timer. Phases still open are left out.
type Report struct {
	TotalMS  float64     `json:"total_ms"`
	Phases   []PhaseStat `json:"phases"`
	Counters []Counter   `json:"counters,omitempty"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	rep := Report{Phases: []PhaseStat{}, Counters: slices.Clone(t.counters)}
	var total time.Duration
	for _, p := range t.phases {
		if p.open {
			continue
		}
		total += p.dur
		rep.Phases = append(rep.Phases, PhaseStat{Name: p.name, DurationMS: millis(p.dur), Note: p.note})
	}
	rep.TotalMS = millis(total)
	return rep
}

// Summary renders the report as an aligned table for stderr.
func (t *Timer) Summary() string {
	rep := t.Report()
	width := len("total")
	for _, p := range rep.Phases {
		width = max(width, len(p.Name))
	}
	for _, c := range rep.Counters {
		width = max(width, len(c.Name))
	}

	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range rep.Phases {
		share := 0.0
		if rep.TotalMS > 0 {
			share = p.DurationMS / rep.TotalMS * 100
		}
		fmt.Fprintf(&b, "  %-*s %9.2f ms %5.1f%%", width, p.Name, p.DurationMS, share)
		if p.Note != "" {
			b.WriteString("  " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-*s %9.2f ms\n", width, "total", rep.TotalMS)
	for _, c := range rep.Counters {
		fmt.Fprintf(&b, "  %-*s %9d\n", width, c.Name, c.Value)
	}
	return b.String()
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
