package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, lvl := range []Level{LevelOff, LevelPhase, LevelDetail, LevelDebug} {
		got, err := ParseLevel(lvl.String())
		if err != nil || got != lvl {
			t.Errorf("ParseLevel(%q) = %v, %v", lvl.String(), got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	root := Begin(tr, ScopeDriver, "tokenize", 0)
	child := Begin(tr, ScopeFile, "scan", root.ID())
	child.Attr("tokens", "3").Attr("bytes", "12").End("ok")
	Point(tr, ScopeToken, "token", "skipped at detail", child.ID())
	root.End("")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[driver] \u2192 tokenize") {
		t.Errorf("unexpected begin line: %q", lines[0])
	}
	if !strings.Contains(lines[2], "\u2190 scan (ok) ") || !strings.HasSuffix(lines[2], " {bytes=12, tokens=3}") {
		t.Errorf("unexpected end line: %q", lines[2])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeToken, "token", "identifier", 0)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["scope"] != "token" || ev["detail"] != "identifier" {
		t.Errorf("unexpected event: %v", ev)
	}
}

func TestDisabledTracer(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("LevelOff tracer must be disabled")
	}
	sp := Begin(tr, ScopeDriver, "noop", 0)
	if sp.ID() != 0 || sp.End("") != 0 {
		t.Error("disabled span must be inert")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer not propagated")
	}

	dirCtx, dir := Start(ctx, ScopeDriver, "tokenize.dir")
	fileCtx, file := Start(dirCtx, ScopeFile, "scan")
	_, tok := Start(fileCtx, ScopeToken, "token")
	if ParentID(dirCtx) != dir.ID() || ParentID(fileCtx) != file.ID() {
		t.Fatal("span not carried by context")
	}
	if tok.ID() != 0 {
		t.Error("token scope must be filtered at detail level")
	}
	file.End("")
	dir.End("")

	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev map[string]any
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("invalid ndjson %q: %v", line, err)
		}
		events = append(events, ev)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if events[1]["parent_id"] != float64(dir.ID()) {
		t.Errorf("scan parent = %v, want %d", events[1]["parent_id"], dir.ID())
	}
	if events[2]["kind"] != "end" || events[2]["name"] != "scan" {
		t.Errorf("unexpected third event: %v", events[2])
	}
}

func TestAutoFormatFromPath(t *testing.T) {
	path := t.TempDir() + "/trace.ndjson"
	tr, err := New(Config{Level: LevelPhase, OutputPath: path})
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()
	if st, ok := tr.(*StreamTracer); !ok || st.format != FormatNDJSON {
		t.Errorf("expected ndjson stream tracer, got %#v", tr)
	}
}
