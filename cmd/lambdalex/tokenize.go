package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lambdalex/internal/diag"
	"lambdalex/internal/diagfmt"
	"lambdalex/internal/driver"
	"lambdalex/internal/observ"
	"lambdalex/internal/source"
	"lambdalex/internal/token"
)

// cacheApp: подкаталог в $XDG_CACHE_HOME.
const cacheApp = "lambdalex"

var errLexical = errors.New("lexical errors found")

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.lam|dir>",
		Short: "Tokenize a lambdalex source file or directory",
		Long: `Tokenize breaks a .lam source file into tokens. Given a directory,
every *.lam file below it is tokenized in parallel.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the token cache")
	cmd.Flags().String("diagnostics", "auto", "diagnostics format on stderr (auto|pretty|short|json)")
	return cmd
}

// tokenizeRun: разобранные флаги одной команды tokenize.
type tokenizeRun struct {
	st     *settings
	format string
	diags  string
	ui     bool
	opts   driver.Options
	out    io.Writer
	errOut io.Writer
}

func runTokenize(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, "format", &st.config.Tokenize.Format); err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		if st.config.Tokenize.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		st.config.Tokenize.Cache = false
	}
	if err := st.config.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	showUI, err := wantProgressUI(uiFlag, st.config.Tokenize.Format, stdoutIsTerminal)
	if err != nil {
		return err
	}
	diagsFlag, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	diags, err := diagnosticsFormat(diagsFlag, st.config.Tokenize.Format)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	run := &tokenizeRun{
		st:     st,
		format: st.config.Tokenize.Format,
		diags:  diags,
		ui:     showUI,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		opts: driver.Options{
			MaxDiagnostics: st.maxDiagnostics,
			Jobs:           st.config.Tokenize.Jobs,
		},
	}
	if st.timings {
		run.opts.Timer = observ.NewTimer()
	}
	if st.config.Tokenize.Cache {
		cache, err := driver.OpenDiskCache(cacheApp)
		if err != nil {
			// без кэша всё равно работаем
			fmt.Fprintf(run.errOut, "warning: token cache disabled: %v\n", err)
		} else {
			run.opts.Cache = cache
		}
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if info.IsDir() {
		err = run.dir(cmd.Context(), path)
	} else {
		err = run.file(cmd.Context(), path)
	}
	if run.opts.Timer != nil {
		fmt.Fprint(run.errOut, run.opts.Timer.Summary())
	}
	if errors.Is(err, errLexical) {
		cmd.SilenceErrors = true
	}
	return err
}

func (r *tokenizeRun) file(ctx context.Context, path string) error {
	res, err := driver.Tokenize(ctx, path, r.opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := r.writeDiagnostics(res.Bag, res.FileSet); err != nil {
		return err
	}
	if err := r.writeTokens(res.Tokens, res.FileSet); err != nil {
		return err
	}
	if res.Err != nil {
		return errLexical
	}
	return nil
}

func (r *tokenizeRun) dir(ctx context.Context, dir string) error {
	var (
		fs      *source.FileSet
		results []driver.TokenizeDirResult
		err     error
	)
	if r.ui {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return fmt.Errorf("tokenization failed: %w", listErr)
		}
		fs, results, err = runTokenizeDirWithUI(ctx, "tokenize "+dir, files, dir, r.opts)
	} else {
		fs, results, err = driver.TokenizeDir(ctx, dir, r.opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	merged := diag.NewBag(r.st.maxDiagnostics)
	failed := 0
	for _, res := range results {
		merged.Merge(res.Bag)
		if res.Err != nil || res.Bag.HasErrors() {
			failed++
		}
	}
	merged.Sort()
	merged.Dedup()
	if err := r.writeDiagnostics(merged, fs); err != nil {
		return err
	}

	switch r.format {
	case "json":
		outputs := make([]diagfmt.FileTokensOutput, 0, len(results))
		for _, res := range results {
			outputs = append(outputs, r.fileOutput(res, fs))
		}
		if err := writeJSON(r.out, outputs); err != nil {
			return err
		}
	case "msgpack":
		// поток объектов, по одному на файл
		for _, res := range results {
			if err := diagfmt.FormatTokensMsgpack(r.out, res.Tokens, fs, r.st.pathMode); err != nil {
				return err
			}
		}
	default:
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(r.out)
			}
			fmt.Fprintf(r.out, "==> %s (%d tokens) <==\n", r.fileOutput(res, fs).File, len(res.Tokens))
			if err := diagfmt.FormatTokensPretty(r.out, res.Tokens, fs); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(r.errOut, "%d of %d files had errors\n", failed, len(results))
		return errLexical
	}
	return nil
}

// fileOutput подставляет путь файла, даже если токенов нет.
func (r *tokenizeRun) fileOutput(res driver.TokenizeDirResult, fs *source.FileSet) diagfmt.FileTokensOutput {
	out := diagfmt.BuildTokensOutput(res.Tokens, fs, r.st.pathMode)
	if out.File == "" && res.File != nil {
		out.File = res.File.FormatPath(r.st.pathMode.String(), fs.BaseDir())
	}
	return out
}

func (r *tokenizeRun) writeTokens(tokens []token.Token, fs *source.FileSet) error {
	switch r.format {
	case "json":
		return diagfmt.FormatTokensJSON(r.out, tokens, fs, r.st.pathMode)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(r.out, tokens, fs, r.st.pathMode)
	default:
		return diagfmt.FormatTokensPretty(r.out, tokens, fs)
	}
}

// diagnosticsFormat resolves "auto": pretty next to pretty tokens, json otherwise.
func diagnosticsFormat(flag, tokensFormat string) (string, error) {
	switch flag {
	case "auto", "":
		if tokensFormat == "pretty" {
			return "pretty", nil
		}
		return "json", nil
	case "pretty", "short", "json":
		return flag, nil
	}
	return "", fmt.Errorf("invalid diagnostics format %q (expected: auto|pretty|short|json)", flag)
}

func (r *tokenizeRun) writeDiagnostics(bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	switch r.diags {
	case "pretty":
		diagfmt.Pretty(r.errOut, bag, fs, r.st.prettyOpts())
		return nil
	case "short":
		return diagfmt.Short(r.errOut, bag, fs, diagfmt.ShortOpts{PathMode: r.st.pathMode})
	}
	return diagfmt.JSON(r.errOut, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         r.st.pathMode,
		IncludeNotes:     true,
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
