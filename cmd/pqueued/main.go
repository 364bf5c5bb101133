// Command pqueued runs the priority queue TCP server described in
// SPEC_FULL.md. It binds a host:port, accepts connections, and dispatches
// line-oriented commands against one shared in-memory queue.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pqueue/internal/config"
	"pqueue/internal/logging"
	"pqueue/internal/queue"
	"pqueue/internal/server"
)

func main() {
	host := flag.String("host", "", "server host (default 0.0.0.0)")
	port := flag.String("port", "", "server port (default 8002)")
	debug := flag.Bool("debug", false, "enable per-line debug logging")
	flag.BoolVar(debug, "d", false, "shorthand for --debug")
	configFile := flag.String("config", "", "optional JSON config file overlaying host/port/debug")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pqueued: failed to load config file %q: %v\n", *configFile, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over the file, which wins over the built-in default.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "debug", "d":
			cfg.Debug = *debug
		}
	})

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(os.Stdout, logging.Options{
		Level:    level,
		UseColor: cfg.Debug,
	})

	handle := queue.New()
	srv := server.New(handle, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting pqueued", "addr", cfg.Addr(), "debug", cfg.Debug)
	if err := srv.Start(ctx, cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "pqueued: %v\n", err)
		os.Exit(1)
	}
}
