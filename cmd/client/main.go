package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"folkers/internal/cli/commands"
	"folkers/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("folkers client %s (built %s)\n", version, buildDate)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}
