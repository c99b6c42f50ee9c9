package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides
const EnvPrefix = "FAKENEWS"

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Model    ModelConfig    `mapstructure:"model" yaml:"model"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Redis    RedisConfig    `mapstructure:"redis" yaml:"redis"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	CORS     CORSConfig     `mapstructure:"cors" yaml:"cors"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host" yaml:"host"`
	Port         int           `mapstructure:"port" yaml:"port"`
	Mode         string        `mapstructure:"mode" yaml:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
}

// Classifier backends
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// ModelConfig selects and locates the classifier
type ModelConfig struct {
	Backend   string        `mapstructure:"backend" yaml:"backend"`
	Path      string        `mapstructure:"path" yaml:"path"`
	RemoteURL string        `mapstructure:"remote_url" yaml:"remote_url"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// CacheConfig holds in-process prediction cache settings
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	Size    int           `mapstructure:"size" yaml:"size"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// RedisConfig holds Redis settings for the shared prediction cache
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Host     string        `mapstructure:"host" yaml:"host"`
	Port     int           `mapstructure:"port" yaml:"port"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// Addr returns the host:port of the Redis server
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Database drivers for prediction history
const (
	DriverNone     = ""
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds prediction history storage settings
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" yaml:"driver"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	DBName   string `mapstructure:"dbname" yaml:"dbname"`
	SSLMode  string `mapstructure:"sslmode" yaml:"sslmode"`
	Path     string `mapstructure:"path" yaml:"path"`
}

// Enabled reports whether prediction history is stored
func (c DatabaseConfig) Enabled() bool {
	return c.Driver != DriverNone
}

// LogConfig holds logger settings
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// CORSConfig holds cross-origin settings for the /api routes
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins" yaml:"allow_origins"`
}

// Load reads configuration from defaults, an optional config.yaml in the
// working directory or ./configs, and FAKENEWS_* environment variables.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations and tolerates a missing file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT is honoured for platforms that inject it
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Model.Backend {
	case BackendLocal:
		if c.Model.Path == "" {
			return errors.New("model.path is required for the local backend")
		}
	case BackendRemote:
		if c.Model.RemoteURL == "" {
			return errors.New("model.remote_url is required for the remote backend")
		}
	default:
		return fmt.Errorf("unsupported model.backend %q", c.Model.Backend)
	}

	switch c.Database.Driver {
	case DriverNone, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	// Model
	v.SetDefault("model.backend", BackendLocal)
	v.SetDefault("model.path", "models/fake_news_model.json")
	v.SetDefault("model.remote_url", "")
	v.SetDefault("model.timeout", 10*time.Second)

	// In-process cache
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 10000)
	v.SetDefault("cache.ttl", time.Hour)

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)

	// Database
	v.SetDefault("database.driver", DriverNone)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "fakenews")
	v.SetDefault("database.password", "fakenews")
	v.SetDefault("database.dbname", "fakenews")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "data/predictions.db")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	// CORS
	v.SetDefault("cors.allow_origins", []string{"*"})
}
