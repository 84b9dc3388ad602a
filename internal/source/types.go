package source

// FileID identifies a file inside one FileSet.
type FileID uint32

// FileFlags records what happened to the bytes before they were stored.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // не с диска: stdin, repl, тесты
	FileHadBOM                               // срезан UTF-8 BOM
	FileNormalizedCRLF                       // \r\n свернуты в \n
	FileNormalizedNFC                        // текст приведен к NFC
)

// Has reports whether every bit of mask is set.
func (f FileFlags) Has(mask FileFlags) bool { return f&mask == mask }

// File is one normalized source text.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// Lines holds the byte offset where each line starts; Lines[0] is always 0.
	Lines []uint32
	Hash  [32]byte
	Flags FileFlags
}

// LineCol is a 1-based line and a 1-based column counted in runes.
type LineCol struct {
	Line uint32
	Col  uint32
}
