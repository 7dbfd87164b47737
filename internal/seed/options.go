package seed

import "github.com/spf13/afero"

type Options struct {
	Fs     afero.Fs
	Format Format
}

func (o Options) WithFs(fs afero.Fs) Options {
	o.Fs = fs
	return o
}

// WithFormat forces every file to be read as f, ignoring its extension.
// Compression suffixes are still honored.
func (o Options) WithFormat(f Format) Options {
	o.Format = f
	return o
}

func NewDefaultOptions() Options {
	return Options{
		Fs:     afero.NewOsFs(),
		Format: FormatAuto,
	}
}
