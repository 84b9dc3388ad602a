package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит составной хеш: H( content || salt1 || salt2 ... ).
// Кэш токенов ключуется Combine(содержимое, версия схемы).
func Combine(content Digest, salts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range salts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DigestOf hashes an arbitrary string, e.g. a schema tag.
func DigestOf(s string) Digest {
	return sha256.Sum256([]byte(s))
}

// Hex returns the lowercase hex form used for cache file names.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}
