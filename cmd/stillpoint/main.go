package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/janovian/stillpoint/internal/buildinfo"
	"github.com/janovian/stillpoint/internal/cli"
	"github.com/janovian/stillpoint/internal/config"
	"github.com/janovian/stillpoint/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
