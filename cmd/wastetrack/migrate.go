package main

import (
	"fmt"

	"wastetrack/internal/db"
	"wastetrack/pkg/types"

	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the residents and reports tables for the configured store",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)
		ctx := c.Context

		if cfg.StoreBackend == types.StoreBackendDynamoDB {
			awsConfig, err := loadAWSConfig(ctx, cfg)
			if err != nil {
				return err
			}

			if err := db.CreateDynamoTables(ctx, db.ConnectDynamoDB(awsConfig, cfg), cfg); err != nil {
				return fmt.Errorf("failed to create dynamodb tables: %w", err)
			}

			logger.Info("DynamoDB tables ready")
			return nil
		}

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}

		logger.Info("Postgres schema applied")
		return nil
	},
}
