package main

import (
	"fmt"
	"time"

	"wastetrack/internal/seed"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the store with demo residents and pending reports",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)

		stores, err := openBackends(c.Context, cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer stores.close()

		logger.WithField("backend", cfg.StoreBackend).Info("Seeding reports...")

		n, err := seed.SeedReports(c.Context, stores.residents, stores.reports, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to seed reports: %w", err)
		}

		logger.WithField("reports", n).Info("Reports seeded successfully")
		return nil
	},
}
