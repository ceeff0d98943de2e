package main

import (
	"context"
	"fmt"

	"gramsahayak/internal/db"
	"gramsahayak/internal/seed"
	"gramsahayak/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		villagersRepo := store.NewVillagerRepository(pool)
		officialsRepo := store.NewOfficialRepository(pool)
		contractorsRepo := store.NewContractorRepository(pool)
		schemesRepo := store.NewSchemeRepository(pool)
		proposalsRepo := store.NewProposalRepository(pool)

		logrus.Info("Seeding schemes...")
		if err := seed.SeedSchemes(ctx, schemesRepo); err != nil {
			return fmt.Errorf("failed to seed schemes: %w", err)
		}

		logrus.Info("Seeding demo users...")
		if err := seed.SeedDemoUsers(ctx, villagersRepo, officialsRepo, contractorsRepo); err != nil {
			return fmt.Errorf("failed to seed demo users: %w", err)
		}

		logrus.Info("Seeding demo proposals...")
		if err := seed.SeedDemoProposals(ctx, proposalsRepo); err != nil {
			return fmt.Errorf("failed to seed demo proposals: %w", err)
		}

		logrus.Info("Seeding complete")

		return nil
	},
}
