package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
)

func init() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()

		fmt.Fprintf(out, "Usage: %s [options] <command> [args]\n\n", os.Args[0])

		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  get KEY [DEFAULT]  Print the value stored under KEY")
		fmt.Fprintln(out, "  has KEY            Print whether KEY is present")
		fmt.Fprintln(out, "  keys               Print every key in insertion order")
		fmt.Fprintln(out, "  size               Print the number of entries")
		fmt.Fprintln(out, "  dump               Print the whole dictionary")

		fmt.Fprintln(out, "\nOptions:")
		flag.PrintDefaults()

		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  STRDICT_SEEDS: Comma separated seed files")
		fmt.Fprintln(out, "  STRDICT_FORMAT: Seed format (json, jsonc, yaml, toml)")
		fmt.Fprintln(out, "  STRDICT_OUTPUT: Output format (json, yaml)")
		fmt.Fprintln(out, "  STRDICT_DEBUG: Whether to log debug messages")

		fmt.Fprintln(out, "\nConfig file:")
		fmt.Fprintln(out, "The config file is a TOML file with the following structure:")
		fmt.Fprintln(out)
		printTOMLStructure(
			&prefixedWriter{w: out, prefix: []byte("    ")},
			NewConfig(),
		)
	}
}

type prefixedWriter struct {
	w      io.Writer
	prefix []byte
}

// Write prefixes p as a whole, so callers should write one line at a time.
func (pw *prefixedWriter) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(pw.prefix)+len(p))
	buf = append(append(buf, pw.prefix...), p...)

	if _, err := pw.w.Write(buf); err != nil {
		return 0, err
	}

	return len(p), nil
}

func printTOMLStructure(w io.Writer, v interface{}) {
	t := reflect.TypeOf(v)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		name := f.Tag.Get("toml")

		if name == "" || name == "-" {
			continue
		}

		if f.Type.Kind() == reflect.Slice {
			fmt.Fprintf(w, "%s = [%s]\n", name, f.Type.Elem().Kind())
			continue
		}

		fmt.Fprintf(w, "%s = %s\n", name, f.Type.Kind())
	}
}
