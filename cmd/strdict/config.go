package main

import (
	"flag"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
)

type Config struct {
	Seeds  []string `toml:"seeds"`
	Format string   `toml:"format"`
	Output string   `toml:"output"`
	Debug  bool     `toml:"debug"`
}

func NewConfig() *Config {
	return &Config{
		Output: "json",
	}
}

func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	err = toml.NewDecoder(file).Decode(c)
	if err != nil {
		return err
	}

	return nil
}

// LoadEnv overrides fields with any STRDICT_* variables that are set.
// STRDICT_SEEDS is appended to the seeds from the config file.
func (c *Config) LoadEnv() {
	if v, ok := os.LookupEnv("STRDICT_SEEDS"); ok {
		c.Seeds = append(c.Seeds, splitList(v)...)
	}

	if v, ok := os.LookupEnv("STRDICT_FORMAT"); ok {
		c.Format = v
	}

	if v, ok := os.LookupEnv("STRDICT_OUTPUT"); ok {
		c.Output = v
	}

	if v, ok := os.LookupEnv("STRDICT_DEBUG"); ok {
		c.Debug = cast.ToBool(v)
	}
}

func defineFlags(fs *flag.FlagSet) {
	fs.String("seed", "", "Comma separated seed files, loaded after those in the config")
	fs.String("format", "", "Force seed format (json, jsonc, yaml, toml)")
	fs.String("o", "", "Output format (json, yaml)")
	fs.Bool("debug", false, "Log debug messages")
}

// ApplyFlags overrides fields with the flags explicitly set on fs. Seeds
// are appended.
func (c *Config) ApplyFlags(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()

		switch f.Name {
		case "seed":
			c.Seeds = append(c.Seeds, splitList(v)...)
		case "format":
			c.Format = v
		case "o":
			c.Output = v
		case "debug":
			c.Debug = cast.ToBool(v)
		}
	})
}

func splitList(s string) []string {
	var items []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
