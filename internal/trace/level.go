package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls how deep tracing goes. Each level admits one more Scope.
type Level uint8

const (
	LevelOff    Level = iota
	LevelPhase        // команды и пакетные операции
	LevelDetail       // плюс отдельные файлы
	LevelDebug        // плюс каждый токен
)

var levelNames = []string{"off", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by String, case-insensitively; "" is off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	if i := slices.Index(levelNames, strings.ToLower(s)); i >= 0 {
		return Level(i), nil // #nosec G115 -- индекс меньше len(levelNames)
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames, "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
// Scopes are numbered so that ScopeDriver passes at LevelPhase and so on.
func (l Level) ShouldEmit(scope Scope) bool {
	return scope != 0 && uint8(scope) <= uint8(l)
}
