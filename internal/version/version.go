// Package version carries the build fingerprint of the lambdalex binary.
// The variables are meant to be set with -ldflags "-X"; when they are empty
// the VCS stamp recorded by the Go toolchain is used instead.
package version

import (
	"cmp"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = "" // ISO-8601
)

var partColors = [3]*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Info is the resolved fingerprint.
type Info struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Current resolves the fingerprint, falling back to vcs.* build settings
// for whatever -ldflags left empty.
func Current() Info {
	info := Info{
		Tool:      "lambdalex",
		Version:   cmp.Or(strings.TrimSpace(Version), "dev"),
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
		GoVersion: runtime.Version(),
	}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Colored paints major.minor.patch; any -pre or +build suffix stays plain.
func (i Info) Colored() string {
	core, suffix := i.Version, ""
	if cut := strings.IndexAny(core, "-+"); cut >= 0 {
		core, suffix = core[:cut], core[cut:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return i.Version
	}
	for n, p := range parts {
		parts[n] = partColors[n].Sprint(p)
	}
	return strings.Join(parts, ".") + suffix
}

// Line is the one-line form: "lambdalex 1.2.3 (abc123, 2024-01-15)".
func (i Info) Line(colored bool) string {
	v := i.Version
	if colored {
		v = i.Colored()
	}
	var extra []string
	if i.GitCommit != "" {
		commit := i.GitCommit
		if i.Modified {
			commit += "+dirty"
		}
		extra = append(extra, commit)
	}
	if i.BuildDate != "" {
		extra = append(extra, i.BuildDate)
	}
	line := i.Tool + " " + v
	if len(extra) > 0 {
		line += " (" + strings.Join(extra, ", ") + ")"
	}
	return line
}
