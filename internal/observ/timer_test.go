package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	stopLoad := tm.Phase("load")
	stopLoad("2 files")
	stopLoad("ignored")
	tm.Phase("scan")("")
	tm.Phase("open") // не закрыта, в отчёт не попадает

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Name != "load" || r.Phases[0].Note != "2 files" {
		t.Errorf("unexpected first phase: %+v", r.Phases[0])
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %.3f smaller than a phase %.3f", r.TotalMS, r.Phases[0].DurationMS)
	}
}

func TestTimerCountersConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tm.Add("tokens", 1)
			}
		}()
	}
	wg.Wait()
	tm.Add("files", 8)

	r := tm.Report()
	if len(r.Counters) != 2 || r.Counters[0].Name != "tokens" || r.Counters[0].Value != 800 {
		t.Errorf("unexpected counters: %+v", r.Counters)
	}
	if tm.Counter("files") != 8 || tm.Counter("missing") != 0 {
		t.Errorf("unexpected Counter values")
	}
	summary := tm.Summary()
	for _, want := range []string{"timings:", "tokens", "total", "800"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Phase("x")("")
	tm.Add("tokens", 1)
	if r := tm.Report(); len(r.Phases) != 0 || tm.Counter("tokens") != 0 {
		t.Error("nil timer must report nothing")
	}
}
