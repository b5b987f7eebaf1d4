package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envConfigPath = "CONFIG_PATH"

type AppConfig struct {
	API      *APIConfig
	Gin      *GinConfig
	Postgres *PostgresConfig
	Kafka    *KafkaConfig
}

type APIConfig struct {
	Environment        string
	Port               string
	BaseURL            string
	AllowedCORSDomains []string
	LogLevel           string
}

type GinConfig struct {
	Mode string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
	TimeZone string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	Retry RetryConfig
}

type RetryConfig struct {
	Count uint64
	Delay time.Duration
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	Version string

	// Timeout bounds each network round trip and the broker ack wait.
	Timeout  time.Duration
	RetryMax int
}

// DSN builds a libpq style connection string for gorm's postgres driver.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode, c.TimeZone)
}

// Load reads the YAML file at path. CONFIG_PATH overrides path, and every key can be
// overridden from the environment, e.g. API_PORT or POSTGRES_HOST.
func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// Watch reloads the file at path on every write and hands the new config to onChange.
func Watch(path string, onChange func(*AppConfig)) error {
	v, err := newViper(path)
	if err != nil {
		return err
	}

	v.OnConfigChange(reloader(v, onChange))
	v.WatchConfig()

	return nil
}

func reloader(v *viper.Viper, onChange func(*AppConfig)) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := decode(v)
		if err != nil {
			zap.L().Warn("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}
		onChange(conf)
	}
}

func newViper(path string) (*viper.Viper, error) {
	if p := os.Getenv(envConfigPath); p != "" {
		path = p
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8000")
	v.SetDefault("api.base_url", "localhost:8000")
	v.SetDefault("api.allowed_cors_domains", []string{"*"})
	v.SetDefault("api.log_level", "info")

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db", "inventory")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.time_zone", "UTC")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", time.Hour)
	v.SetDefault("postgres.retry.count", 5)
	v.SetDefault("postgres.retry.delay", time.Second)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "inventory.transactions")
	v.SetDefault("kafka.version", "")
	v.SetDefault("kafka.timeout", 2*time.Second)
	v.SetDefault("kafka.retry_max", 1)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{
		API: &APIConfig{
			Environment:        v.GetString("api.environment"),
			Port:               v.GetString("api.port"),
			BaseURL:            v.GetString("api.base_url"),
			AllowedCORSDomains: v.GetStringSlice("api.allowed_cors_domains"),
			LogLevel:           v.GetString("api.log_level"),
		},
		Gin: &GinConfig{
			Mode: v.GetString("gin.mode"),
		},
		Postgres: &PostgresConfig{
			Host:            v.GetString("postgres.host"),
			Port:            v.GetString("postgres.port"),
			User:            v.GetString("postgres.user"),
			Password:        v.GetString("postgres.password"),
			DB:              v.GetString("postgres.db"),
			SSLMode:         v.GetString("postgres.ssl_mode"),
			TimeZone:        v.GetString("postgres.time_zone"),
			MaxOpenConns:    v.GetInt("postgres.max_open_conns"),
			MaxIdleConns:    v.GetInt("postgres.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("postgres.conn_max_lifetime"),
			Retry: RetryConfig{
				Count: v.GetUint64("postgres.retry.count"),
				Delay: v.GetDuration("postgres.retry.delay"),
			},
		},
		Kafka: &KafkaConfig{
			Enabled:  v.GetBool("kafka.enabled"),
			Brokers:  v.GetStringSlice("kafka.brokers"),
			Topic:    v.GetString("kafka.topic"),
			Version:  v.GetString("kafka.version"),
			Timeout:  v.GetDuration("kafka.timeout"),
			RetryMax: v.GetInt("kafka.retry_max"),
		},
	}

	if conf.API.Port == "" {
		return nil, errors.New("api.port must not be empty")
	}
	if conf.Kafka.Enabled && (len(conf.Kafka.Brokers) == 0 || conf.Kafka.Topic == "") {
		return nil, errors.New("kafka.brokers and kafka.topic are required when kafka is enabled")
	}

	return conf, nil
}
