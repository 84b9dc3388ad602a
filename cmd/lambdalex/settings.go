package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lambdalex/internal/diagfmt"
	"lambdalex/internal/project"
)

// settings: конфигурация команды после слияния lambdalex.toml и флагов.
// Явный флаг сильнее файла, файл сильнее значений по умолчанию.
type settings struct {
	manifest *project.Manifest // nil, если lambdalex.toml не найден
	config   project.Config

	color          bool
	pathMode       diagfmt.PathMode
	maxDiagnostics int
	timings        bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	st := &settings{config: project.Default()}
	if configPath != "" {
		m, err := project.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		st.manifest = m
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		m, ok, err := project.LoadManifest(wd)
		if err != nil {
			return nil, err
		}
		if ok {
			st.manifest = m
		}
	}
	if st.manifest != nil {
		st.config = st.manifest.Config
	}

	out := &st.config.Output
	if err := overrideString(cmd, "color", &out.Color); err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "path-mode", &out.PathMode); err != nil {
		return nil, err
	}
	if flags.Changed("max-diagnostics") {
		if st.config.Tokenize.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if err := st.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	if st.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	st.maxDiagnostics = st.config.Tokenize.MaxDiagnostics
	st.color = out.Color == "on" || (out.Color == "auto" && isTerminal(os.Stderr))
	st.pathMode, err = diagfmt.ParsePathMode(out.PathMode)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// overrideString заменяет dst значением флага, только если флаг задан явно.
func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}

func (st *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: st.color, PathMode: st.pathMode, ShowNotes: true}
}
