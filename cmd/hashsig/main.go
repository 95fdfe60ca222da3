package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mzmzeee/hashing-showcase/internal/cli"
	"github.com/mzmzeee/hashing-showcase/internal/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.LoadConfig()
	if err != nil {
		stop()
		log.Fatalf("config: %v", err)
	}

	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		stop()
		log.Fatalf("%v", err)
	}

	code := app.Run(ctx, os.Args[1:])

	if err := app.Close(); err != nil {
		log.Printf("close: %v", err)
	}
	stop()

	os.Exit(code)
}
