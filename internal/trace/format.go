package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // by output file extension
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// formatFor picks ndjson for *.ndjson and *.json trace files, text otherwise.
func formatFor(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".json") {
		return FormatNDJSON
	}
	return FormatText
}

// appendEvent дописывает одну строку (с \n) в buf.
func appendEvent(buf []byte, ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return appendNDJSON(buf, ev)
	}
	return appendText(buf, ev)
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id"`
	ParentID uint64            `json:"parent_id,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	DurMS    float64           `json:"dur_ms,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func appendNDJSON(buf []byte, ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:     ev.Time.Format(time.RFC3339Nano),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		DurMS:    float64(ev.Dur) / float64(time.Millisecond),
		Extra:    ev.Extra,
	})
	if err != nil {
		// map[string]string и строки всегда сериализуются
		return buf
	}
	buf = append(buf, data...)
	return append(buf, '\n')
}

// appendText: #seq [scope] →/←/• name (detail) 1.2ms {k=v, ...}
func appendText(buf []byte, ev *Event) []byte {
	buf = append(buf, '#')
	buf = strconv.AppendUint(buf, ev.Seq, 10)
	buf = append(buf, " ["...)
	buf = append(buf, ev.Scope.String()...)
	buf = append(buf, "] "...)
	if ev.ParentID > 0 {
		buf = append(buf, "  "...)
	}

	switch ev.Kind {
	case KindSpanBegin:
		buf = append(buf, "\u2192 "...) // →
	case KindSpanEnd:
		buf = append(buf, "\u2190 "...) // ←
	case KindPoint:
		buf = append(buf, "\u2022 "...) // •
	}
	buf = append(buf, ev.Name...)

	if ev.Detail != "" {
		buf = append(buf, " ("...)
		buf = append(buf, ev.Detail...)
		buf = append(buf, ')')
	}
	if ev.Kind == KindSpanEnd {
		buf = append(buf, ' ')
		buf = append(buf, ev.Dur.Round(time.Microsecond).String()...)
	}

	// ключи сортируем, чтобы вывод был стабильным
	if len(ev.Extra) > 0 {
		buf = append(buf, " {"...)
		for i, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, k...)
			buf = append(buf, '=')
			buf = append(buf, ev.Extra[k]...)
		}
		buf = append(buf, '}')
	}
	return append(buf, '\n')
}
