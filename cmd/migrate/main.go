package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/internal/infrastructure/questdb/migrations"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/migration"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 applies all pending (up only)")
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg := config.MustLoad[config.Config]()

	ctx := context.Background()
	client, err := questdb.NewClient(ctx, cfg.QuestDB.Config)
	if err != nil {
		log.Error(err, logger.NewField("action", "connect_questdb"))
		os.Exit(1)
	}
	defer client.Close()

	runner := migration.NewRunner(client, migrations.FS, log)

	switch *direction {
	case "up":
		err = runner.MigrateUp(ctx, *steps)
	case "down":
		err = runner.MigrateDown(ctx, *steps)
	default:
		err = fmt.Errorf("unknown direction %q", *direction)
	}
	if err != nil {
		log.Error(err, logger.NewField("action", "migrate_"+*direction))
		client.Close()
		os.Exit(1)
	}

	log.Info("Migrations completed successfully", logger.NewField("direction", *direction))
}
