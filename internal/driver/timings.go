package driver

import (
	"encoding/json"
	"fmt"

	"lambdalex/internal/diag"
	"lambdalex/internal/observ"
	"lambdalex/internal/source"
)

type timingPayload struct {
	Kind string `json:"kind"`
	Path string `json:"path,omitempty"`
	observ.Report
}

// appendTimingDiagnostic добавляет OBS6001 с отчётом таймера в заметке (JSON).
func appendTimingDiagnostic(bag *diag.Bag, file *source.File, payload timingPayload) {
	if bag == nil {
		return
	}
	if payload.Kind == "" {
		payload.Kind = "pipeline"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	sp := source.Span{File: file.ID}
	entry := diag.New(diag.SevInfo, diag.ObsTimings, sp, msg).WithNote(sp, string(data))

	// сводка по времени не должна теряться из-за лимита
	if bag.Len() >= bag.Limit() {
		extra := diag.NewBag(1)
		extra.Add(entry)
		bag.Merge(extra)
		return
	}
	bag.Add(entry)
}
