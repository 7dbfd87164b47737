package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/UTD-JLA/strdict/pkg/dictionary"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var (
	errUsage          = errors.New("invalid usage")
	errKeyNotFound    = errors.New("key not found")
	errUnknownCommand = errors.New("unknown command")
	errUnknownOutput  = errors.New("unknown output format")
)

// run executes one command against d and writes the result to w.
func run(w io.Writer, d *dictionary.Dictionary[any], output string, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "get":
		if len(args) < 2 || len(args) > 3 {
			return errors.Wrap(errUsage, "get KEY [DEFAULT]")
		}

		value, ok := d.Get(args[1])

		if !ok {
			if len(args) == 3 {
				_, err := fmt.Fprintln(w, args[2])
				return err
			}

			return errors.Wrap(errKeyNotFound, args[1])
		}

		return writeValue(w, value, output)
	case "has":
		if len(args) != 2 {
			return errors.Wrap(errUsage, "has KEY")
		}

		_, err := fmt.Fprintln(w, strconv.FormatBool(d.Has(args[1])))
		return err
	case "keys":
		var writeErr error

		err := d.ForEach(func(_ any, key string, _ dictionary.Map[any]) {
			if writeErr == nil {
				_, writeErr = fmt.Fprintln(w, key)
			}
		})

		if err != nil {
			return err
		}

		return writeErr
	case "size":
		_, err := fmt.Fprintln(w, d.Len())
		return err
	case "dump":
		return encode(w, d, output)
	}

	return errors.Wrap(errUnknownCommand, args[0])
}

func writeValue(w io.Writer, value any, output string) error {
	switch value.(type) {
	case map[string]any, []any:
		return encode(w, value, output)
	}

	_, err := fmt.Fprintln(w, cast.ToString(value))
	return err
}

func encode(w io.Writer, v any, output string) error {
	switch output {
	case "", "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(v); err != nil {
			return err
		}

		return encoder.Close()
	}

	return errors.Wrap(errUnknownOutput, output)
}
