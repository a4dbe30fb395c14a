package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"shelfapi/internal/config"
	"shelfapi/internal/platform/logger"
	"shelfapi/internal/platform/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, version, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	log := logger.Setup(os.Getenv("LOG_LEVEL"))

	if err := run(*command, *name); err != nil {
		log.Error("migration failed", "command", *command, "error", err)
		os.Exit(1)
	}
	log.Info("migration command finished", "command", *command)
}

func run(command, name string) error {
	dir := migrationsDir()

	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		return goose.Create(nil, dir, name, "sql")
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, databaseDSN(), 5*time.Second)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "version":
		return goose.Version(db, dir)
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, version, create", command)
	}
}
