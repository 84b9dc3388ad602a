package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lambdalex/internal/version"
)

// newRootCmd собирает дерево команд; каждый вызов даёт свежие флаги.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lambdalex",
		Short:        "Lexer toolchain for a small lambda-calculus language",
		Long:         `lambdalex splits .lam sources into tokens and reports lexical errors`,
		SilenceUsage: true,
		// Устанавливаем версию для автоматического флага --version
		Version: version.Current().Version,
	}
	root.SetVersionTemplate(version.Current().Line(false) + "\n")

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newCleanCmd())
	root.AddCommand(newVersionCmd())

	addGlobalFlags(root)
	return root
}

// addGlobalFlags регистрирует флаги, общие для всех команд.
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	flags.String("config", "", "path to lambdalex.toml (default: search upwards from the working directory)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|phase|detail|debug)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.String("cpuprofile", "", "write a CPU profile to file")
	flags.String("memprofile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")
}

// main runs the root command; a failing command exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
