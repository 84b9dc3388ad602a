package trace

import "time"

// Kind tells a span opening from its closing and from a standalone point.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

// Scope is the granularity of an event. Coarser scopes have smaller values,
// matching the Level that first admits them.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команды и обход каталогов
	ScopeFile                    // один исходный файл
	ScopeToken                   // отдельные токены
)

var (
	kindNames  = [...]string{"unknown", "begin", "end", "point"}
	scopeNames = [...]string{"unknown", "driver", "file", "token"}
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[0]
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return scopeNames[0]
}

// Event is one record in the trace stream.
type Event struct {
	Time     time.Time
	Seq      uint64 // присваивает трассировщик при записи
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64        // 0 для корневого
	Name     string        // "tokenize", "tokenize.dir", "scan", "token"
	Detail   string        // итог span'а или текст токена
	Dur      time.Duration // только у KindSpanEnd
	Extra    map[string]string
}
