package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type ReplyCache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type Watchdog struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
	MaxAgeMinutes   int `mapstructure:"max_age_minutes"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	Logging    Logging    `mapstructure:"logging"`
	ReplyCache ReplyCache `mapstructure:"reply_cache"`
	Watchdog   Watchdog   `mapstructure:"watchdog"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional; a deployment can rely on real env vars only.
	_ = godotenv.Load()

	// config.yaml is optional too; defaults plus env vars are enough to run.
	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "3232")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("reply_cache.max_items", 1024)
	viper.SetDefault("watchdog.interval_seconds", 300)
	viper.SetDefault("watchdog.max_age_minutes", 720)

	_ = viper.BindEnv("http_server.port", "PORT")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")
	_ = viper.BindEnv("reply_cache.max_items", "REPLY_CACHE_MAX_ITEMS")
	_ = viper.BindEnv("watchdog.interval_seconds", "WATCHDOG_INTERVAL_SECONDS")
	_ = viper.BindEnv("watchdog.max_age_minutes", "WATCHDOG_MAX_AGE_MINUTES")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
