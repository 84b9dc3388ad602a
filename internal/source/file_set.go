package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns the files of one run and hands out their IDs.
type FileSet struct {
	files   []*File
	baseDir string
}

func NewFileSet() *FileSet { return &FileSet{} }

// NewFileSetWithBase creates a set whose relative paths are rendered against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet { return &FileSet{baseDir: baseDir} }

// BaseDir returns the configured base or, when unset, the working directory.
func (s *FileSet) BaseDir() string {
	if s.baseDir != "" {
		return s.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func (s *FileSet) Len() int { return len(s.files) }

// Add stores already normalized content under a fresh ID. Adding the same
// path twice yields two independent files.
func (s *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source: %s is too large: %w", path, err))
	}
	id := FileID(safecast.MustConv[uint32](len(s.files)))
	s.files = append(s.files, &File{
		ID:      id,
		Path:    cleanPath(path),
		Content: content,
		Lines:   lineStarts(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	return id
}

// Load reads path from disk, normalizes it and adds it to the set.
func (s *FileSet) Load(path string) (FileID, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- путь задает пользователь
	if err != nil {
		return 0, err
	}
	content, flags := normalize(raw)
	return s.Add(path, content, flags), nil
}

// AddVirtual adds in-memory text as is, marked FileVirtual.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	return s.Add(name, content, FileVirtual)
}

// Get returns the file for id. It panics on IDs from another set.
func (s *FileSet) Get(id FileID) *File { return s.files[id] }

// Resolve maps both ends of span to line/column positions.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	f := s.Get(span.File)
	return f.LineCol(span.Start), f.LineCol(span.End)
}
