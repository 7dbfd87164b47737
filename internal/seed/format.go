package seed

import (
	"path"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatAuto  Format = ""
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

type compression int

const (
	compressionNone compression = iota
	compressionGzip
	compressionZstd
)

var ErrUnknownFormat = errors.New("unknown seed format")

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return FormatAuto, errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// detect infers the document format and compression from a file name such
// as "seed.yaml.zst".
func detect(name string) (Format, compression) {
	name = strings.ToLower(name)
	comp := compressionNone

	switch path.Ext(name) {
	case ".gz":
		comp = compressionGzip
	case ".zst", ".zstd":
		comp = compressionZstd
	}

	if comp != compressionNone {
		name = strings.TrimSuffix(name, path.Ext(name))
	}

	switch path.Ext(name) {
	case ".json":
		return FormatJSON, comp
	case ".jsonc":
		return FormatJSONC, comp
	case ".yaml", ".yml":
		return FormatYAML, comp
	case ".toml":
		return FormatTOML, comp
	}

	return FormatAuto, comp
}
