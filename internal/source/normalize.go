package source

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalize prepares raw file bytes for lexing: strips a leading BOM, folds
// CRLF pairs and composes the text to NFC so a decomposed "λ" lexes as one rune.
func normalize(raw []byte) ([]byte, FileFlags) {
	var flags FileFlags
	text, ok := stripBOM(raw)
	if ok {
		flags |= FileHadBOM
	}
	if text, ok = foldCRLF(text); ok {
		flags |= FileNormalizedCRLF
	}
	if text, ok = toNFC(text); ok {
		flags |= FileNormalizedNFC
	}
	return text, flags
}

func stripBOM(b []byte) ([]byte, bool) {
	if rest, ok := bytes.CutPrefix(b, utf8BOM); ok {
		return rest, true
	}
	return b, false
}

// foldCRLF turns "\r\n" into "\n". A lone '\r' stays, the lexer reports it.
func foldCRLF(b []byte) ([]byte, bool) {
	if !bytes.Contains(b, []byte("\r\n")) {
		return b, false
	}
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n")), true
}

func toNFC(b []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(b) {
		return b, false
	}
	return norm.NFC.Bytes(b), true
}
