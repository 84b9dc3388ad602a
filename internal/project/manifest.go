package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a decoded lambdalex.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors lambdalex.toml.
type Config struct {
	Tokenize TokenizeConfig `toml:"tokenize"`
	Output   OutputConfig   `toml:"output"`
}

type TokenizeConfig struct {
	Format         string `toml:"format"`
	Jobs           int    `toml:"jobs"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Cache          bool   `toml:"cache"`
}

type OutputConfig struct {
	Color    string `toml:"color"`
	PathMode string `toml:"path_mode"`
}

// Default returns the configuration used when no manifest is found.
func Default() Config {
	return Config{
		Tokenize: TokenizeConfig{
			Format:         "pretty",
			MaxDiagnostics: 100,
			Cache:          true,
		},
		Output: OutputConfig{
			Color:    "auto",
			PathMode: "auto",
		},
	}
}

var (
	formats   = []string{"pretty", "json", "msgpack"}
	colors    = []string{"auto", "on", "off"}
	pathModes = []string{"auto", "absolute", "relative", "basename"}
)

// LoadManifest finds lambdalex.toml above startDir and decodes it.
// ok is false when no manifest exists.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile decodes the manifest at path over Default().
func LoadFile(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Tokenize.Format) {
		return fmt.Errorf("[tokenize].format must be one of %s, got %q", strings.Join(formats, "|"), c.Tokenize.Format)
	}
	if c.Tokenize.Jobs < 0 {
		return fmt.Errorf("[tokenize].jobs must be >= 0, got %d", c.Tokenize.Jobs)
	}
	if c.Tokenize.MaxDiagnostics < 0 {
		return fmt.Errorf("[tokenize].max_diagnostics must be >= 0, got %d", c.Tokenize.MaxDiagnostics)
	}
	if !slices.Contains(colors, c.Output.Color) {
		return fmt.Errorf("[output].color must be one of %s, got %q", strings.Join(colors, "|"), c.Output.Color)
	}
	if !slices.Contains(pathModes, c.Output.PathMode) {
		return fmt.Errorf("[output].path_mode must be one of %s, got %q", strings.Join(pathModes, "|"), c.Output.PathMode)
	}
	return nil
}
