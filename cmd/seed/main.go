package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"logistic-api/config"
	configDocstore "logistic-api/config/docstore"
	"logistic-api/internal/seed"
	"logistic-api/pkg/log"
)

const seedTimeout = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	store, err := configDocstore.Connect(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect document store: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	res, err := seed.Seed(ctx, logger, store)
	if err != nil {
		logger.Errorf(ctx, "Seeding failed: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Seed complete: %d users, %d leads", res.Users, res.Leads)
}
