package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lambdalex/internal/diag"
	"lambdalex/internal/lexer"
	"lambdalex/internal/project"
	"lambdalex/internal/source"
	"lambdalex/internal/token"
)

// Current schema version - increment when CachePayload format or lexer rules change
const diskCacheSchemaVersion uint16 = 1

var schemaDigest = project.DigestOf(fmt.Sprintf("lambdalex/tokens/v%d", diskCacheSchemaVersion))

// CacheKey ключует поток токенов по содержимому файла и версии схемы.
func CacheKey(content project.Digest) project.Digest {
	return project.Combine(content, schemaDigest)
}

// DiskCache хранит потоки токенов по хешу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is a token without its file ID; offsets are kept.
type CachedToken struct {
	Kind   uint8   `msgpack:"k"`
	Text   string  `msgpack:"t,omitempty"`
	Number float64 `msgpack:"n,omitempty"`
	Start  uint32  `msgpack:"s"`
	End    uint32  `msgpack:"e"`
}

// CachedError is a lexical failure that ended the stream.
type CachedError struct {
	Code   uint16 `msgpack:"c"`
	Line   uint32 `msgpack:"l"`
	Column uint32 `msgpack:"col"`
	Start  uint32 `msgpack:"s"`
	End    uint32 `msgpack:"e"`
	Msg    string `msgpack:"m"`
}

// CachePayload stores a scanned file.
type CachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16       `msgpack:"schema"`
	Tokens []CachedToken `msgpack:"tokens"`
	Err    *CachedError `msgpack:"err,omitempty"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location
// ($XDG_CACHE_HOME/<app>/tokens, falling back to ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app, "tokens"))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.Hex()
	// двухсимвольный префикс, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
// A payload with a different schema is reported as a miss.
func (c *DiskCache) Get(key project.Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", f.Name(), err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим, чтобы параллельные читатели не видели полупустой кэш
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// toCachePayload converts a scan result for storage.
func toCachePayload(tokens []token.Token, lexErr *lexer.Error) *CachePayload {
	payload := &CachePayload{
		Schema: diskCacheSchemaVersion,
		Tokens: make([]CachedToken, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:   uint8(tok.Kind),
			Text:   tok.Text,
			Number: tok.Number,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
		}
	}
	if lexErr != nil {
		payload.Err = &CachedError{
			Code:   uint16(lexer.CodeOf(lexErr)),
			Line:   lexErr.Line,
			Column: lexErr.Column,
			Start:  lexErr.Span.Start,
			End:    lexErr.Span.End,
			Msg:    lexErr.Msg,
		}
	}
	return payload
}

// fromCachePayload restores tokens and the lexical error for file.
func fromCachePayload(payload *CachePayload, file source.FileID) ([]token.Token, *lexer.Error, error) {
	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		kind := token.Kind(ct.Kind)
		if kind == token.Invalid || kind > token.Operator {
			return nil, nil, fmt.Errorf("cached token %d has invalid kind %d", i, ct.Kind)
		}
		tokens[i] = token.Token{
			Kind:   kind,
			Text:   ct.Text,
			Number: ct.Number,
			Span:   source.Span{File: file, Start: ct.Start, End: ct.End},
		}
	}
	if payload.Err == nil {
		return tokens, nil, nil
	}
	kind := lexer.KindOf(diag.Code(payload.Err.Code))
	if kind == nil {
		return nil, nil, fmt.Errorf("cached error has unknown code %d", payload.Err.Code)
	}
	return tokens, &lexer.Error{
		Kind:   kind,
		Line:   payload.Err.Line,
		Column: payload.Err.Column,
		Span:   source.Span{File: file, Start: payload.Err.Start, End: payload.Err.End},
		Msg:    payload.Err.Msg,
	}, nil
}
