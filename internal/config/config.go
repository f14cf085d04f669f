package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full service configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Persistence PersistenceConfig `yaml:"persistence" mapstructure:"persistence"`
	Anthropic   AnthropicConfig   `yaml:"anthropic" mapstructure:"anthropic"`
	Places      PlacesConfig      `yaml:"places" mapstructure:"places"`
	Settlement  SettlementConfig  `yaml:"settlement" mapstructure:"settlement"`
	Events      EventsConfig      `yaml:"events" mapstructure:"events"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StoreConfig selects where the profile and ledger records live.
// Driver is one of sqlite, postgres, dynamodb or memory.
type StoreConfig struct {
	Driver      string         `yaml:"driver" mapstructure:"driver"`
	SQLitePath  string         `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	DatabaseURL string         `yaml:"database_url" mapstructure:"database_url"`
	DynamoDB    DynamoDBConfig `yaml:"dynamodb" mapstructure:"dynamodb"`
}

type DynamoDBConfig struct {
	Region          string `yaml:"region" mapstructure:"region"`
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	Table           string `yaml:"table" mapstructure:"table"`
}

// PersistenceConfig tunes the retry applied to durable writes.
type PersistenceConfig struct {
	RetryAttempts int           `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	RetryBackoff  time.Duration `yaml:"retry_backoff" mapstructure:"retry_backoff"`
}

type AnthropicConfig struct {
	Key               string `yaml:"key" mapstructure:"key"`
	BaseURL           string `yaml:"base_url" mapstructure:"base_url"`
	Model             string `yaml:"model" mapstructure:"model"`
	MaxTokens         int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerMinute int    `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
}

// PlacesConfig configures buyer discovery. Provider is google or static.
type PlacesConfig struct {
	Provider   string  `yaml:"provider" mapstructure:"provider"`
	Key        string  `yaml:"key" mapstructure:"key"`
	BaseURL    string  `yaml:"base_url" mapstructure:"base_url"`
	MaxResults int     `yaml:"max_results" mapstructure:"max_results"`
	RadiusM    float64 `yaml:"radius_m" mapstructure:"radius_m"`
}

// SettlementConfig configures the Mercado Pago gateway.
type SettlementConfig struct {
	Mock            bool          `yaml:"mock" mapstructure:"mock"`
	AccessToken     string        `yaml:"access_token" mapstructure:"access_token"`
	PaymentMethodID string        `yaml:"payment_method_id" mapstructure:"payment_method_id"`
	PayerEmail      string        `yaml:"payer_email" mapstructure:"payer_email"`
	Latency         time.Duration `yaml:"latency" mapstructure:"latency"`
}

type EventsConfig struct {
	NATSURL string `yaml:"nats_url" mapstructure:"nats_url"`
	Subject string `yaml:"subject" mapstructure:"subject"`
}

// Load reads configuration from an optional config.yaml and NEXUS_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NEXUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", "nexus.db")
	v.SetDefault("store.database_url", "")
	v.SetDefault("store.dynamodb.region", "us-east-1")
	v.SetDefault("store.dynamodb.endpoint", "")
	v.SetDefault("store.dynamodb.access_key_id", "local")
	v.SetDefault("store.dynamodb.secret_access_key", "local")
	v.SetDefault("store.dynamodb.table", "nexus_state")
	v.SetDefault("persistence.retry_attempts", 3)
	v.SetDefault("persistence.retry_backoff", 200*time.Millisecond)
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.base_url", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.requests_per_minute", 30)
	v.SetDefault("places.provider", "static")
	v.SetDefault("places.key", "")
	v.SetDefault("places.base_url", "https://places.googleapis.com/v1")
	v.SetDefault("places.max_results", 5)
	v.SetDefault("places.radius_m", 10000.0)
	v.SetDefault("settlement.mock", true)
	v.SetDefault("settlement.access_token", "")
	v.SetDefault("settlement.payment_method_id", "pix")
	v.SetDefault("settlement.payer_email", "")
	v.SetDefault("settlement.latency", 1500*time.Millisecond)
	v.SetDefault("events.nats_url", "")
	v.SetDefault("events.subject", "nexus.trade.completed")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at wiring time.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres", "dynamodb", "memory":
	default:
		return eris.Errorf("config: unknown store.driver %q", c.Store.Driver)
	}
	if c.Store.Driver == "postgres" && c.Store.DatabaseURL == "" {
		return eris.New("config: store.database_url is required for the postgres driver")
	}
	switch c.Places.Provider {
	case "static", "google":
	default:
		return eris.Errorf("config: unknown places.provider %q", c.Places.Provider)
	}
	if c.Places.Provider == "google" && c.Places.Key == "" {
		return eris.New("config: places.key is required for the google provider")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return eris.Errorf("config: invalid server.port %d", c.Server.Port)
	}
	return nil
}

// InitLogger installs the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
