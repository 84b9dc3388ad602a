package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"lambdalex/internal/diagfmt"
	"lambdalex/internal/driver"
	"lambdalex/internal/source"
)

const (
	replPrompt  = "lam> "
	historyFile = "repl_history"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Tokenize lines interactively",
		Long: `repl reads one line at a time and prints its tokens.
Type :quit or press Ctrl-D to exit.`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, err := replHistoryPath(); err == nil {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fs := source.NewFileSet()
	opts := driver.Options{MaxDiagnostics: st.maxDiagnostics}

	for n := 1; ; n++ {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return nil
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(errOut, "unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(line)

		id := fs.AddVirtual(fmt.Sprintf("<repl:%d>", n), []byte(line))
		res, err := driver.TokenizeSource(cmd.Context(), fs, id, opts)
		if err != nil {
			return err
		}
		if err := diagfmt.FormatTokensPretty(out, res.Tokens, fs); err != nil {
			return err
		}
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(errOut, res.Bag, fs, st.prettyOpts())
		}
	}
}

// replHistoryPath: $XDG_CACHE_HOME/lambdalex/repl_history, каталог создаётся.
func replHistoryPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, cacheApp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, historyFile), nil
}
