package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

type DBconfig struct {
	URL string
}

type RESTconfig struct {
	PORT            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string

	// Прием объявлений из очереди, только для LISTINGS_SOURCE=postgres
	IngestEnabled      bool
	IngestQueue        string
	IngestBatchSize    int
	IngestBatchTimeout time.Duration
}

// StorageConfig выбирает реализацию источника объявлений и хранилища избранного
type StorageConfig struct {
	ListingsSource string
	FavoritesStore string
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	RabbitMQ     RabbitMQConfig
	Storage      StorageConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// UsesPostgres сообщает, нужен ли пул соединений к PostgreSQL
func (c *AppConfig) UsesPostgres() bool {
	return c.Storage.ListingsSource == SourcePostgres || c.Storage.FavoritesStore == SourcePostgres
}

// LoadConfig загружает конфигурацию из .env и переменных окружения.
// Отсутствие .env по умолчанию не ошибка (переменные могут прийти из окружения),
// а вот явно переданный путь обязан существовать.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("could not load .env file (path: %s): %w", envPath[0], err)
		}
	} else if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not parse .env file: %w", err)
		}
		log.Println("Info: no .env file found, using environment variables")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listing-service")

	// REST
	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	cfg.Rest.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	// Хранилища
	cfg.Storage.ListingsSource = strings.ToLower(getEnvAsString("LISTINGS_SOURCE", SourceMemory))
	cfg.Storage.FavoritesStore = strings.ToLower(getEnvAsString("FAVORITES_STORE", SourceMemory))
	for name, value := range map[string]string{
		"LISTINGS_SOURCE": cfg.Storage.ListingsSource,
		"FAVORITES_STORE": cfg.Storage.FavoritesStore,
	} {
		if value != SourceMemory && value != SourcePostgres {
			return nil, fmt.Errorf("%s must be %q or %q, got %q", name, SourceMemory, SourcePostgres, value)
		}
	}

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.UsesPostgres() && cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required when postgres storage is selected")
	}

	// RabbitMQ (события избранного)
	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", "listing_events")
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
		}
	}
	cfg.RabbitMQ.IngestEnabled = getEnvAsBool("LISTINGS_INGEST_ENABLED", false)
	cfg.RabbitMQ.IngestQueue = getEnvAsString("LISTINGS_INGEST_QUEUE", "listing_service.listings_ingest")
	cfg.RabbitMQ.IngestBatchSize = getEnvAsInt("LISTINGS_INGEST_BATCH_SIZE", 50)
	cfg.RabbitMQ.IngestBatchTimeout = getEnvAsDuration("LISTINGS_INGEST_BATCH_TIMEOUT", 5*time.Second)
	if cfg.RabbitMQ.IngestEnabled {
		if !cfg.RabbitMQ.Enabled {
			return nil, fmt.Errorf("LISTINGS_INGEST_ENABLED requires RABBITMQ_ENABLED")
		}
		if cfg.Storage.ListingsSource != SourcePostgres {
			return nil, fmt.Errorf("LISTINGS_INGEST_ENABLED requires LISTINGS_SOURCE=%s", SourcePostgres)
		}
		if cfg.RabbitMQ.IngestBatchSize <= 0 {
			return nil, fmt.Errorf("LISTINGS_INGEST_BATCH_SIZE must be positive, got %d", cfg.RabbitMQ.IngestBatchSize)
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvAsList читает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var result []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			result = append(result, p)
		}
	}
	return result
}
