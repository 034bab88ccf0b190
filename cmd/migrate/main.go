package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"reporting-srv/config"
	configPostgre "reporting-srv/config/postgre"
	"reporting-srv/migrations"
	"reporting-srv/pkg/log"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate [up|down|status]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "migrate: connect postgres: %v", err)
	}
	defer configPostgre.Disconnect(ctx, db)

	switch command {
	case "up":
		err = migrations.Up(ctx, db)
	case "down":
		err = migrations.Down(ctx, db)
	case "status":
		err = migrations.Status(ctx, db)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatalf(ctx, "migrate %s: %v", command, err)
	}
	logger.Infof(ctx, "migrate %s: done", command)
}
