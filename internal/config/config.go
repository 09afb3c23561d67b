package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/pkg/validator"
)

// Источники каталога для API
const (
	SourceJSON     = "json"
	SourceSnapshot = "snapshot"
	SourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Worker    WorkerConfig
	Routing   RoutingConfig
	Catalogue CatalogueConfig
}

type ServerConfig struct {
	Host string
	Port int `validate:"gte=0,lte=65535"`
	Env  string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RouteInfoTTL time.Duration
	ItineraryTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int `validate:"gte=1,lte=1000"`
}

// RoutingConfig - параметры графа по умолчанию, если их нет в источнике каталога
type RoutingConfig struct {
	BusWaitTime   int
	BusVelocity   float64
	SkipSelfLoops bool
}

type CatalogueConfig struct {
	Source       string `validate:"oneof=json snapshot postgres"`
	InputFile    string
	SnapshotFile string
}

// Load читает конфигурацию из файла path (.env формат) и переменных окружения.
// Отсутствующий файл не ошибка: значения берутся из окружения и умолчаний.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteInfoTTL: time.Duration(v.GetInt("ROUTE_INFO_CACHE_TTL")) * time.Second,
			ItineraryTTL: time.Duration(v.GetInt("ITINERARY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
		},
		Routing: RoutingConfig{
			BusWaitTime:   v.GetInt("ROUTING_BUS_WAIT_TIME"),
			BusVelocity:   v.GetFloat64("ROUTING_BUS_VELOCITY"),
			SkipSelfLoops: v.GetBool("ROUTING_SKIP_SELF_LOOPS"),
		},
		Catalogue: CatalogueConfig{
			Source:       v.GetString("CATALOGUE_SOURCE"),
			InputFile:    v.GetString("CATALOGUE_INPUT_FILE"),
			SnapshotFile: v.GetString("CATALOGUE_SNAPSHOT_FILE"),
		},
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Catalogue.Source == SourcePostgres && !cfg.Database.Enabled {
		return nil, fmt.Errorf("invalid config: CATALOGUE_SOURCE=postgres requires DB_ENABLED=true")
	}
	if cfg.Worker.Enabled && !cfg.Redis.Enabled {
		return nil, fmt.Errorf("invalid config: WORKER_ENABLED=true requires REDIS_ENABLED=true")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "production")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("ROUTE_INFO_CACHE_TTL", 600)
	v.SetDefault("ITINERARY_CACHE_TTL", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WORKER_CONSUMER_GROUP", "catalogue-reload-workers")
	v.SetDefault("WORKER_BATCH_SIZE", 10)
	v.SetDefault("ROUTING_SKIP_SELF_LOOPS", true)
	v.SetDefault("CATALOGUE_SOURCE", SourceJSON)
	v.SetDefault("CATALOGUE_INPUT_FILE", "data/catalogue.json")
	v.SetDefault("CATALOGUE_SNAPSHOT_FILE", "data/catalogue.db")
}

// HasRoutingDefaults - заданы ли параметры графа в конфигурации
func (c *Config) HasRoutingDefaults() bool {
	return c.Routing.BusVelocity > 0
}

// RoutingFallback - параметры графа из конфигурации, nil если не заданы.
// Применяются, только когда их нет ни в документе, ни в снимке.
func (c *Config) RoutingFallback() *domain.RoutingSettings {
	if !c.HasRoutingDefaults() {
		return nil
	}
	return &domain.RoutingSettings{
		BusWaitTime: c.Routing.BusWaitTime,
		BusVelocity: c.Routing.BusVelocity,
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
