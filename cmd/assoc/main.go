package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/structures/assoc"
	"github.com/tailored-agentic-units/structures/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to a JSON, JSONC or TOML config file")
		capacity   = flag.Int("capacity", 0, "Initial capacity (overrides config)")
		verbose    = flag.Bool("verbose", false, "Log container events to stderr")
	)
	flag.Parse()

	cfg := assoc.DefaultConfig()
	if *configFile != "" {
		loaded, err := assoc.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *capacity > 0 {
		cfg.Capacity = *capacity
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
		cfg.Observer = "slog"
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("session", uuid.Must(uuid.NewV7()).String())
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	array, err := assoc.NewFromConfig[string, string](&cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	logger.Debug("container ready", "capacity", array.Cap(), "observer", cfg.Observer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newShell(array, os.Stdout).run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Fatalf("Shell failed: %v", err)
	}
}
