package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lambdalex/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show lambdalex build fingerprints",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().Bool("hash", false, "include git commit hash")
	cmd.Flags().Bool("date", false, "include build timestamp")
	cmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	hash, _ := flags.GetBool("hash")
	date, _ := flags.GetBool("date")
	full, _ := flags.GetBool("full")

	info := version.Current()
	// без флагов печатаем только версию
	if !hash && !full {
		info.GitCommit, info.Modified = "", false
	}
	if !date && !full {
		info.BuildDate = ""
	}
	if !full {
		info.GoVersion = ""
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(out, info)
	case "pretty":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	colorFlag, _ := flags.GetString("color")
	colored := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	fmt.Fprintln(out, info.Line(colored))
	if info.GoVersion != "" {
		fmt.Fprintf(out, "go: %s\n", info.GoVersion)
	}
	return nil
}
