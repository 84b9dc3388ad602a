package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lambdalex/internal/driver"
	"lambdalex/internal/source"
	"lambdalex/internal/ui"
)

// wantProgressUI разбирает --ui. В режиме auto прогресс рисуется только для
// pretty-вывода и только если tty() истинно.
func wantProgressUI(flag, format string, tty func() bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return format == "pretty" && tty(), nil
	}
	return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", flag)
}

func stdoutIsTerminal() bool { return isTerminal(os.Stdout) }

type tokenizeDirOutcome struct {
	fs      *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runTokenizeDirWithUI сканирует каталог в фоне, пока Bubble Tea рисует прогресс.
// Программа завершается, когда driver закрывает канал событий.
func runTokenizeDirWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (*source.FileSet, []driver.TokenizeDirResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeDirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- tokenizeDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events, cancel)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ctrl+c отменяет ctx), дочитываем события, чтобы driver не встал
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
