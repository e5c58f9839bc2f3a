package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/komekomeaaa/tarot/internal/rules"
)

// EnvPrefix prefixes every environment override, e.g. TAROTD_REDIS_ADDR.
const EnvPrefix = "TAROTD"

type RedisConfig struct {
	Addr     string `mapstructure:"addr"` // empty = in-memory stores
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type UsageConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Config holds all runtime configuration of tarotd.
// Values are populated from .tarotd.yaml, TAROTD_* env vars, and CLI flags.
type Config struct {
	HTTPAddr    string        `mapstructure:"http_addr"`
	LogLevelRaw string        `mapstructure:"log_level"`
	LogLevel    slog.Level    `mapstructure:"-"`
	Redis       RedisConfig   `mapstructure:"redis"`
	Usage       UsageConfig   `mapstructure:"usage"`
	Session     SessionConfig `mapstructure:"session"`
	Limits      rules.Limits  `mapstructure:"limits"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("usage.enabled", true)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("limits.thesis", rules.DefaultLimits.Thesis)
	v.SetDefault("limits.advice", rules.DefaultLimits.Advice)
	v.SetDefault("limits.ritual", rules.DefaultLimits.Ritual)
}

// Init points the global viper at the config file and the environment. An
// empty cfgFile searches for .tarotd.yaml in the working directory. A missing
// file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tarotd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Load reads configuration from the global viper, applying built-in defaults
// for any values not set by config file, environment, or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load over an explicit viper instance.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	level, err := parseLogLevel(c.LogLevelRaw)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.Redis.DB < 0 {
		return Config{}, fmt.Errorf("invalid redis.db %d", c.Redis.DB)
	}
	if c.Session.TTL < 0 {
		return Config{}, fmt.Errorf("invalid session.ttl %s", c.Session.TTL)
	}
	if c.Limits.Thesis < 0 || c.Limits.Advice < 0 || c.Limits.Ritual < 0 {
		return Config{}, fmt.Errorf("text limits must not be negative")
	}
	return c, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q", s)
	}
}
