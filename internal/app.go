package internal

import (
	"context"
	"errors"
	"fmt"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memory"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitManager *rabbitmq_common.ConnectionManager
	publisher     *rabbitmq_producer.Publisher
	ingestor      *rabbitmq_adapter.ListingIngestConsumer

	// останавливает ingestor, ожидание через workers
	stopWorkers context.CancelFunc
	workers     sync.WaitGroup

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp собирает приложение. Пустой envPath - .env из рабочего каталога, если он есть.
func NewApp(envPath string) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := newLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// При ошибке ниже закрываем все, что успели открыть
	ok := false
	defer func() {
		if !ok {
			application.shutdown(context.Background())
		}
	}()

	ctx := context.Background()

	// --- 1. ХРАНИЛИЩА ---
	if appConfig.UsesPostgres() {
		application.dbPool, err = postgres.NewClient(ctx, postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		if err := postgres_adapter.EnsureSchema(ctx, application.dbPool); err != nil {
			appLogger.Error("Failed to apply database schema", err, nil)
			return nil, err
		}
		appLogger.Info("Successfully connected to PostgreSQL pool", nil)
	}

	var listingSource port.ListingSourcePort = memory.NewListingSource()
	var listingWriter port.ListingWriterPort
	if appConfig.Storage.ListingsSource == configs.SourcePostgres {
		pgSource, err := postgres_adapter.NewListingSource(application.dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres listing source: %w", err)
		}
		listingSource = pgSource
		listingWriter = pgSource
	}

	var favoritesRepo port.FavoritesRepositoryPort = memory.NewFavoritesRepository()
	if appConfig.Storage.FavoritesStore == configs.SourcePostgres {
		favoritesRepo, err = postgres_adapter.NewFavoritesRepository(application.dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres favorites repository: %w", err)
		}
	}
	appLogger.Info("Storage adapters initialized", port.Fields{
		"listings_source": appConfig.Storage.ListingsSource,
		"favorites_store": appConfig.Storage.FavoritesStore,
	})

	// --- 2. СОБЫТИЯ ИЗБРАННОГО ---
	// Интерфейс остается nil, если RabbitMQ выключен
	var favoriteEvents port.FavoriteEventsPort
	if appConfig.RabbitMQ.Enabled {
		bridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger)

		application.rabbitManager, err = rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL}, bridge)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		application.publisher, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			ExchangeName:             appConfig.RabbitMQ.Exchange,
			ExchangeType:             "direct",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   bridge,
		}, application.rabbitManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
			return nil, fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
		}

		eventsPublisher, err := rabbitmq_adapter.NewFavoriteEventsPublisher(application.publisher, appConfig.AppName)
		if err != nil {
			return nil, err
		}
		favoriteEvents = eventsPublisher
		appLogger.Info("Favorite events publisher initialized", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})

		// Загрузка объявлений, LoadConfig гарантирует postgres-источник
		if appConfig.RabbitMQ.IngestEnabled && listingWriter != nil {
			application.ingestor, err = rabbitmq_adapter.NewListingIngestConsumer(rabbitmq_consumer.ConsumerConfig{
				QueueName:    appConfig.RabbitMQ.IngestQueue,
				DurableQueue: true,
				ExchangeName: appConfig.RabbitMQ.Exchange,
				ExchangeType: "direct",
				RoutingKeys:  []string{constants.RoutingKeyListingUpserted},
				ConsumerTag:  appConfig.AppName + "-ingest",
				BatchSize:    appConfig.RabbitMQ.IngestBatchSize,
				BatchTimeout: appConfig.RabbitMQ.IngestBatchTimeout,
				Logger:       bridge,
			}, application.rabbitManager, usecase.NewIngestListingsUseCase(listingWriter), baseLogger)
			if err != nil {
				appLogger.Error("Failed to create listings ingest consumer", err, nil)
				return nil, err
			}
			appLogger.Info("Listings ingest consumer initialized", port.Fields{"queue": appConfig.RabbitMQ.IngestQueue})
		}
	}

	// --- 3. USE CASES ---
	catalog := memory.NewFilterCatalog()
	handlers := rest.Handlers{
		Properties: rest.NewPropertyHandler(
			usecase.NewFindPropertiesUseCase(listingSource),
			usecase.NewGetPropertyDetailsUseCase(listingSource),
		),
		Filters: rest.NewFilterHandler(
			usecase.NewGetFilterOptionsUseCase(catalog, listingSource),
			usecase.NewGetDictionariesUseCase(catalog),
		),
		Tools:    rest.NewToolsHandler(),
		Showcase: rest.NewShowcaseHandler(usecase.NewGetShowcaseUseCase(memory.NewShowcaseSource())),
		Favorites: rest.NewFavoritesHandler(
			usecase.NewAddToFavoritesUseCase(favoritesRepo, listingSource, favoriteEvents),
			usecase.NewRemoveFromFavoritesUseCase(favoritesRepo, favoriteEvents),
			usecase.NewGetFavoritesUseCase(favoritesRepo, listingSource),
		),
	}

	// --- 4. REST API ---
	application.apiServer = rest.NewServer(appConfig.Rest.PORT, handlers, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured", nil)

	ok = true
	return application, nil
}

// newLogger собирает stdout-логгер и, если включен, Fluent Bit
func newLogger(appConfig *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	activeLoggers := []port.LoggerPort{
		logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
			Level:    parseLogLevel(appConfig.StdoutLogger.Level),
			IsJSON:   appConfig.StdoutLogger.IsJSON,
			UseColor: true,
		}),
	}
	stdoutLogger := activeLoggers[0]

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, nil, fmt.Errorf("failed to create fluentbit adapter: %w", err)
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})
	return baseLogger, fluentClient, nil
}

// Run блокируется до сигнала ОС или ошибки HTTP-сервера
func (a *App) Run() error {
	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 2)
	go func() {
		serverErrors <- a.apiServer.Start()
	}()

	if a.ingestor != nil {
		var workersCtx context.Context
		workersCtx, a.stopWorkers = context.WithCancel(context.Background())
		a.workers.Add(1)
		go func() {
			defer a.workers.Done()
			if err := a.ingestor.Start(workersCtx); err != nil {
				serverErrors <- fmt.Errorf("listings ingest consumer stopped: %w", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		if err != nil {
			a.logger.Error("Worker failed, shutting down", err, nil)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Rest.ShutdownTimeout)
	defer cancel()
	if err := a.shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// shutdown закрывает компоненты в обратном порядке создания
func (a *App) shutdown(ctx context.Context) error {
	a.logger.Info("Shutdown sequence initiated...", nil)
	var errs []error

	if a.apiServer != nil {
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
			errs = append(errs, err)
		}
	}

	if a.stopWorkers != nil {
		a.stopWorkers()
		a.workers.Wait()
	}
	if a.ingestor != nil {
		if err := a.ingestor.Close(); err != nil {
			a.logger.Error("Error closing listings ingest consumer", err, nil)
			errs = append(errs, err)
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.rabbitManager != nil {
		if err := a.rabbitManager.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed", nil)
	}

	a.logger.Info("Application shut down", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent к этому моменту может быть недоступен
			fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
		}
	}
	return errors.Join(errs...)
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
