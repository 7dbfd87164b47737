package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UTD-JLA/strdict/internal/seed"
)

var configPath = flag.String("config", "", "Path to config file")

func init() {
	defineFlags(flag.CommandLine)
}

func main() {
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	config := NewConfig()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	config.LoadEnv()
	config.ApplyFlags(flag.CommandLine)

	if config.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	format, err := seed.ParseFormat(config.Format)

	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := seed.NewLoader(seed.NewDefaultOptions().WithFormat(format))
	d, err := loader.LoadAll(ctx, config.Seeds)

	if err != nil {
		log.Fatal(err)
	}

	slog.Debug("seeds loaded", slog.Int("files", len(config.Seeds)), slog.Int("entries", d.Len()))

	if err = run(os.Stdout, d, config.Output, flag.Args()); err != nil {
		log.Fatal(err)
	}
}
