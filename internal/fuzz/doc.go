// Package fuzztests houses Go fuzz harnesses for the lexer. The goal is to
// smoke test robustness on arbitrary inputs: no panics, monotonic spans and
// a stable error once scanning has failed.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag.

package fuzztests
