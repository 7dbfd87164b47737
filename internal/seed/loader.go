// Package seed builds dictionaries from initializer documents on disk.
package seed

import (
	"context"
	"io"
	"log/slog"

	"github.com/UTD-JLA/strdict/pkg/dictionary"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	options Options
}

func NewLoader(options Options) *Loader {
	if options.Fs == nil {
		options.Fs = afero.NewOsFs()
	}

	return &Loader{options: options}
}

func (l *Loader) Load(name string) (*dictionary.Dictionary[any], error) {
	d := dictionary.New[any]()

	if err := l.LoadInto(name, d); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadInto sets every entry of the document in d, in document order (sorted
// key order for TOML). d is left unchanged if the document cannot be read.
func (l *Loader) LoadInto(name string, d *dictionary.Dictionary[any]) error {
	format, comp := detect(name)

	if l.options.Format != FormatAuto {
		format = l.options.Format
	}

	if format == FormatAuto {
		return errors.Wrap(ErrUnknownFormat, name)
	}

	slog.Debug("loading seed", slog.String("file", name), slog.String("format", string(format)))

	r, err := open(l.options.Fs, name, comp)
	if err != nil {
		return errors.Wrap(err, "open seed")
	}

	defer r.Close()

	before := d.Len()

	if err = decode(format, r, d); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}

	slog.Debug("seed loaded", slog.String("file", name), slog.Int("added", d.Len()-before))

	return nil
}

// LoadAll reads the named documents concurrently and merges them in the
// order given, so later documents override earlier ones.
func (l *Loader) LoadAll(ctx context.Context, names []string) (*dictionary.Dictionary[any], error) {
	results := make([]*dictionary.Dictionary[any], len(names))
	g, ctx := errgroup.WithContext(ctx)

	for i, name := range names {
		i, name := i, name

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			d, err := l.Load(name)
			if err != nil {
				return err
			}

			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := dictionary.New[any]()

	for _, d := range results {
		merged.Merge(d)
	}

	return merged, nil
}

func decode(format Format, r io.Reader, d *dictionary.Dictionary[any]) error {
	switch format {
	case FormatJSON:
		return d.DecodeJSON(r)
	case FormatJSONC:
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}

		return d.UnmarshalJSON(jsonc.ToJSON(data))
	case FormatYAML:
		err := yaml.NewDecoder(r).Decode(d)

		// empty document
		if err == io.EOF {
			return nil
		}

		return err
	case FormatTOML:
		var table map[string]any

		if err := toml.NewDecoder(r).Decode(&table); err != nil {
			return err
		}

		d.Merge(dictionary.NewFrom(table))
		return nil
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}
