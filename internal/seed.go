package internal

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/adapters/memory"
	postgres_adapter "listing-service/internal/adapters/postgres"
	"listing-service/internal/configs"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/postgres"
)

// SeedListings создает схему и загружает демонстрационные объявления в PostgreSQL.
// Повторный запуск перезаписывает те же id.
func SeedListings(ctx context.Context, envPath string) (int64, error) {
	appConfig, err := configs.LoadConfig(envPath)
	if err != nil {
		return 0, fmt.Errorf("error loading application configuration: %w", err)
	}
	if appConfig.Database.URL == "" {
		return 0, errors.New("DATABASE_URL is required for seeding")
	}

	baseLogger, fluentClient, err := newLogger(appConfig)
	if err != nil {
		return 0, err
	}
	if fluentClient != nil {
		defer fluentClient.Close()
	}
	logger := baseLogger.WithFields(port.Fields{"component": "seed"})
	ctx = contextkeys.ContextWithLogger(ctx, logger)

	pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", err, nil)
		return 0, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	if err := postgres_adapter.EnsureSchema(ctx, pool); err != nil {
		return 0, err
	}

	source, err := postgres_adapter.NewListingSource(pool)
	if err != nil {
		return 0, err
	}
	affected, err := usecase.NewIngestListingsUseCase(source).Execute(ctx, memory.SampleProperties())
	if err != nil {
		return 0, err
	}
	logger.Info("Sample listings seeded", port.Fields{"affected": affected})
	return affected, nil
}
