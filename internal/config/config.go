package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

var (
	ErrUnknownDatasetSource = errors.New("unknown dataset source")
	ErrPostgresRequired     = errors.New("PG_DSN is required")
)

type Config struct {
	App      App
	HTTP     HTTP
	Model    Model
	Postgres Postgres
	Redis    Redis
	Audit    Audit
}

type App struct {
	Name       string `env:"APP_NAME"     envDefault:"cancer-api"`
	Version    string `env:"APP_VERSION"  envDefault:"dev"`
	LogLevel   string `env:"LOG_LEVEL"    envDefault:"info"`
	LogNoColor bool   `env:"LOG_NO_COLOR"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS"         envDefault:":8086"`
	ProbeListenAddress   string        `env:"HTTP_PROBE_LISTEN_ADDRESS"   envDefault:":8087"`
	MetricsListenAddress string        `env:"HTTP_METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT"    envDefault:"5s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"       envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN"      envDefault:"4096"`
	MaskedFields         []string      `env:"HTTP_LOG_MASKED_FIELDS"      envSeparator:","`
	CORSAllowedOrigins   []string      `env:"HTTP_CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"http://127.0.0.1:4200,https://nighthawkcoders.github.io"` //nolint:lll
}

type Model struct {
	DatasetSource      string        `env:"DATASET_SOURCE"             envDefault:"csv"`
	DatasetPath        string        `env:"MODEL_DATASET_PATH"         envDefault:"data/cancer.csv"`
	MaxIterations      int           `env:"MODEL_MAX_ITERATIONS"       envDefault:"1000"`
	TestRatio          float64       `env:"MODEL_TEST_RATIO"           envDefault:"0.2"`
	Seed               uint64        `env:"MODEL_SEED"                 envDefault:"42"`
	TreeMaxDepth       int           `env:"MODEL_TREE_MAX_DEPTH"       envDefault:"0"`
	PredictionCacheTTL time.Duration `env:"MODEL_PREDICTION_CACHE_TTL" envDefault:"5m"`
}

type Redis struct {
	Address            string `env:"REDIS_ADDRESS"              envDefault:"localhost:6379"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD"             json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB"                   envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE"            envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNECTIONS" envDefault:"0"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNECTIONS" envDefault:"0"`
}

// Audit enables asynchronous recording of served predictions. It needs both
// Redis and Postgres.
type Audit struct {
	Enabled     bool   `env:"AUDIT_ENABLED"`
	Queue       string `env:"AUDIT_QUEUE"       envDefault:"predictions"`
	Concurrency int    `env:"AUDIT_CONCURRENCY" envDefault:"2"`
	MaxRetry    int    `env:"AUDIT_MAX_RETRY"   envDefault:"5"`
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse(nil)
}

// Parse reads the configuration from environment, or from the process
// environment when it is nil.
func Parse(environment map[string]string) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("env.ParseWithOptions: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.Model.DatasetSource {
	case DatasetSourceCSV:
	case DatasetSourcePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("dataset source %s: %w", c.Model.DatasetSource, ErrPostgresRequired)
		}
	default:
		return fmt.Errorf("%q: %w", c.Model.DatasetSource, ErrUnknownDatasetSource)
	}

	if c.Audit.Enabled && c.Postgres.DSN == "" {
		return fmt.Errorf("audit: %w", ErrPostgresRequired)
	}

	return nil
}
