package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lambdalex/internal/diag"
	"lambdalex/internal/source"
	"lambdalex/internal/trace"
)

// SourceExt is the extension of lambdalex source files.
const SourceExt = ".lam"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path string // путь к файлу, как найден при обходе
	*TokenizeResult
}

// ListSourceFiles возвращает отсортированный список всех *.lam файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.lam файлы в директории параллельно.
// Результаты идут в порядке путей; у каждого файла свой Bag.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize.dir")
	span.Attr("dir", dir)
	defer span.End("")

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	span.Attr("files", strconv.Itoa(len(files)))

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен, поэтому загружаем всё заранее
	endLoad := opts.Timer.Phase("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			// пустой виртуальный файл, чтобы у I/O диагностики был путь
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
	}
	endLoad(strconv.Itoa(len(files))+" files")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	endScan := opts.Timer.Phase("scan")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started := time.Now()
			bag := diag.NewBag(opts.MaxDiagnostics)
			file := fileSet.Get(fileIDs[i])

			if loadErr, hadError := loadErrors[i]; hadError {
				bag.Add(diag.Errorf(diag.IOLoadFileError, source.Span{File: file.ID}, "failed to load file: %v", loadErr))
				results[i] = TokenizeDirResult{Path: path, TokenizeResult: &TokenizeResult{FileSet: fileSet, File: file, Bag: bag}}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(started)})
				return nil
			}

			emit(opts.Progress, Event{File: path, Stage: StageScan, Status: StatusWorking})
			res, err := scanFile(gctx, file, bag, opts)
			if err != nil {
				emit(opts.Progress, Event{File: path, Stage: StageScan, Status: StatusError, Err: err, Elapsed: time.Since(started)})
				return err
			}
			res.FileSet = fileSet
			results[i] = TokenizeDirResult{Path: path, TokenizeResult: res}

			status, stage := StatusDone, StageScan
			if res.Cached {
				stage = StageCache
			}
			var evErr error
			if res.Err != nil {
				status, evErr = StatusError, res.Err
			}
			emit(opts.Progress, Event{File: path, Stage: stage, Status: status, Err: evErr, Elapsed: time.Since(started), Tokens: len(res.Tokens)})
			return nil
		})
	}

	err = g.Wait()
	endScan(strconv.Itoa(len(files))+" files")
	if err != nil {
		return fileSet, results, err
	}

	if opts.TimingDiagnostic && opts.Timer != nil {
		first := results[0]
		appendTimingDiagnostic(first.Bag, first.File, timingPayload{Kind: "tokenize.dir", Path: dir, Report: opts.Timer.Report()})
	}
	return fileSet, results, nil
}
