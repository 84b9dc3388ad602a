package diagfmt

import "lambdalex/internal/source"

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	return f.FormatPath(mode.String(), fs.BaseDir())
}
