package driver

import "lambdalex/internal/observ"

// Options configures Tokenize and TokenizeDir.
type Options struct {
	MaxDiagnostics int
	// Jobs ограничивает число параллельных файлов; 0 = GOMAXPROCS.
	Jobs int
	// Cache может быть nil: тогда кэш не используется.
	Cache *DiskCache
	// Progress получает события по файлам; может быть nil.
	Progress ProgressSink
	// Timer, если задан, собирает фазы и счётчики.
	Timer *observ.Timer
	// TimingDiagnostic adds an OBS6001 info diagnostic with the timer report to each bag.
	TimingDiagnostic bool
}
