package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pratikshau1/vaultnotes/internal/buildinfo"
	"github.com/pratikshau1/vaultnotes/internal/cli"
	"github.com/pratikshau1/vaultnotes/internal/config"
	"github.com/pratikshau1/vaultnotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
