// Package token defines lexical token kinds and the fixed lexical tables of
// the lambda expression language.
// Invariants:
//   - Every emitted token has one of six kinds; Invalid is only the zero value.
//   - Number tokens carry their parsed value in Number; all other kinds carry
//     their payload in Text (decoded text for strings).
//   - Keywords, operators and punctuation are compile-time tables, not options.
//   - The lambda glyph 'λ' always lexes as the keyword "lambda".
package token
