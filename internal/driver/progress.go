package driver

import "time"

// Stage is the step a file is in when an Event is sent.
type Stage uint8

const (
	StageLoad  Stage = iota // чтение и нормализация
	StageCache              // поиск в кэше токенов
	StageScan               // лексер
)

// Status is where a file stands within its Stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Finished reports whether no more events will follow for the file.
func (s Status) Finished() bool { return s == StatusDone || s == StatusError }

// Event reports progress for one file. Every file gets exactly one
// StatusQueued event, at most one StatusWorking and one finishing event.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration // время с начала обработки файла; 0 до завершения
	Tokens  int           // число токенов в финальном событии
}

// ProgressSink consumes progress events from parallel workers, so
// implementations must be goroutine-safe.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel; sends block while the reader lags.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
