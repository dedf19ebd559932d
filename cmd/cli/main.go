package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/staffkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/staffkeeper/internal/client/cli"
	"github.com/dmitrijs2005/staffkeeper/internal/client/config"
	"github.com/dmitrijs2005/staffkeeper/internal/logging"
	"github.com/google/uuid"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger.With("run_id", uuid.NewString()))
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
