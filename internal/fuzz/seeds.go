package fuzztests

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

// addCorpusSeeds добавляет input.lam из golden-архивов лексера и пару
// коротких примеров на случай, если архивов нет.
func addCorpusSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("id = λ x x\n"))
	f.Add([]byte("\"a\\tb\" 1.5 != ( ) # c"))

	archives, err := filepath.Glob(filepath.Join("..", "lexer", "testdata", "*.txtar"))
	if err != nil {
		return
	}
	for _, path := range archives {
		archive, err := txtar.ParseFile(path)
		if err != nil {
			continue
		}
		for _, file := range archive.Files {
			if filepath.Ext(file.Name) == ".lam" {
				f.Add(clampSeed(file.Data))
			}
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
