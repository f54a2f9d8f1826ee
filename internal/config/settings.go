package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read into Settings
const EnvPrefix = "SURPLUS"

// Settings holds process configuration for the CLI and HTTP server
type Settings struct {
	Server   ServerSettings   `mapstructure:"server"`
	Logging  LoggingSettings  `mapstructure:"logging"`
	Cache    CacheSettings    `mapstructure:"cache"`
	Defaults DefaultsSettings `mapstructure:"defaults"`
}

type ServerSettings struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CacheSettings struct {
	Size          int           `mapstructure:"size"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

type DefaultsSettings struct {
	SavingsRate string `mapstructure:"savings_rate"`
}

// LoadSettings reads settings from defaults, an optional settings file, an
// optional .env file and SURPLUS_* environment variables, in increasing priority.
// An empty path skips the settings file.
func LoadSettings(path string) (*Settings, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read settings %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("defaults.savings_rate", "0")
}

// Validate checks if the settings are usable
func (s *Settings) Validate() error {
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Server.Port)
	}

	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", s.Logging.Level)
	}

	switch strings.ToLower(s.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", s.Logging.Format)
	}

	if s.Cache.Size < 0 {
		return fmt.Errorf("cache.size cannot be negative")
	}

	rate, err := decimal.NewFromString(s.Defaults.SavingsRate)
	if err != nil {
		return fmt.Errorf("defaults.savings_rate must be a valid decimal: %w", err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("defaults.savings_rate cannot be negative")
	}

	return nil
}

// Addr returns the listen address of the HTTP server
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Server.Host, s.Server.Port)
}

// DefaultSavingsRate returns the savings rate applied when a configuration omits one
func (s *Settings) DefaultSavingsRate() decimal.Decimal {
	rate, _ := decimal.NewFromString(s.Defaults.SavingsRate)
	return rate
}

// UseRedis reports whether comparisons are memoized in redis instead of in memory
func (s *Settings) UseRedis() bool {
	return s.Cache.RedisAddr != ""
}
