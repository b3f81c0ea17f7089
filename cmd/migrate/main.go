// Command migrate applies the SQL files under migrations/ with the atlas CLI.
// Run `atlas migrate hash --dir file://migrations` after adding a file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/logging"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log)

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"from", res.Current,
		"to", res.Target,
	)
}
