package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lambdalex/internal/diag"
	"lambdalex/internal/lexer"
	"lambdalex/internal/source"
	"lambdalex/internal/token"
	"lambdalex/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err: лексическая ошибка, на которой остановился разбор (nil если файл прочитан целиком).
	Err    *lexer.Error
	Cached bool
}

// Tokenize загружает файл и сканирует его до конца или до первой ошибки.
// Ошибка ввода-вывода возвращается как error, лексическая попадает в Bag и Err.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize")
	defer span.End("")

	fs := source.NewFileSet()
	endLoad := opts.Timer.Phase("load")
	fileID, err := fs.Load(path)
	endLoad(path)
	if err != nil {
		span.Attr("error", err.Error())
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	return tokenizeLoaded(ctx, fs, file, opts)
}

// TokenizeSource сканирует уже добавленный в FileSet файл (REPL, stdin).
func TokenizeSource(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*TokenizeResult, error) {
	return tokenizeLoaded(ctx, fs, fs.Get(id), opts)
}

func tokenizeLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*TokenizeResult, error) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	endScan := opts.Timer.Phase("scan")
	res, err := scanFile(ctx, file, bag, opts)
	endScan(file.Path)
	if err != nil {
		return nil, err
	}
	res.FileSet = fs
	if opts.TimingDiagnostic && opts.Timer != nil {
		appendTimingDiagnostic(bag, file, timingPayload{Kind: "tokenize", Path: file.Path, Report: opts.Timer.Report()})
	}
	return res, nil
}

// scanFile: общий путь для одного файла: кэш, лексер, счётчики, трассировка.
func scanFile(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := trace.Start(ctx, trace.ScopeFile, "scan")
	span.Attr("file", file.Path)

	res := &TokenizeResult{File: file, Bag: bag}
	key := CacheKey(file.Hash)

	if opts.Cache != nil {
		var payload CachePayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			// битый кэш не фатален: сообщаем и сканируем заново
			bag.Add(diag.Warningf(diag.IOCacheReadError, source.Span{File: file.ID}, "%v", err))
		}
		if hit {
			tokens, lexErr, convErr := fromCachePayload(&payload, file.ID)
			if convErr == nil {
				res.Tokens, res.Err, res.Cached = tokens, lexErr, true
				if lexErr != nil {
					bag.Add(lexer.Diagnostic(lexErr))
				}
				opts.Timer.Add("cache.hit", 1)
				finishScan(ctx, span, res, opts)
				return res, nil
			}
			bag.Add(diag.Warningf(diag.IOCacheReadError, source.Span{File: file.ID}, "%v", convErr))
		}
		opts.Timer.Add("cache.miss", 1)
	}

	reporter := diag.Unique(bag)
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tokens, err := lx.All()
	res.Tokens = tokens
	if err != nil {
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			return nil, err
		}
		res.Err = lexErr
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toCachePayload(res.Tokens, res.Err)); err != nil {
			span.Attr("cache_error", err.Error())
		}
	}
	finishScan(ctx, span, res, opts)
	return res, nil
}

func finishScan(ctx context.Context, span *trace.Span, res *TokenizeResult, opts Options) {
	opts.Timer.Add("files", 1)
	opts.Timer.Add("tokens", int64(len(res.Tokens)))
	opts.Timer.Add("bytes", int64(len(res.File.Content)))

	if tracer := trace.FromContext(ctx); tracer.Level() >= trace.LevelDebug {
		for _, tok := range res.Tokens {
			trace.Point(tracer, trace.ScopeToken, "token", tok.String(), trace.ParentID(ctx))
		}
	}

	detail := "ok"
	if res.Err != nil {
		detail = res.Err.Error()
	}
	span.Attr("tokens", strconv.Itoa(len(res.Tokens))).
		Attr("cached", strconv.FormatBool(res.Cached)).
		End(detail)
}
