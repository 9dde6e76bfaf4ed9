package config

import (
	"fmt"
	"os"
	"strconv"

	"NeonQuotes/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Dashboard struct {
		Tickers         string `yaml:"tickers"` // comma-separated user list
		Period          string `yaml:"period"`
		RefreshSeconds  int    `yaml:"refresh_seconds"`
		BackgroundImage string `yaml:"background_image"` // optional chart background
	} `yaml:"dashboard"`
	News struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"news"`
	Cache struct {
		HistoryTTLSeconds int `yaml:"history_ttl_seconds"`
		InfoTTLSeconds    int `yaml:"info_ttl_seconds"`
		NewsTTLSeconds    int `yaml:"news_ttl_seconds"`
	} `yaml:"cache"`
	HTTP struct {
		TimeoutSeconds     int `yaml:"timeout_seconds"`
		LogoTimeoutSeconds int `yaml:"logo_timeout_seconds"`
	} `yaml:"http"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NEONQUOTES_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("NEONQUOTES_TICKERS"); v != "" {
		cfg.Dashboard.Tickers = v
	}
	if v := os.Getenv("NEONQUOTES_PERIOD"); v != "" {
		cfg.Dashboard.Period = v
	}
	if v := os.Getenv("NEONQUOTES_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dashboard.RefreshSeconds = n
		}
	}
	if v := os.Getenv("NEONQUOTES_BACKGROUND_IMAGE"); v != "" {
		cfg.Dashboard.BackgroundImage = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Dashboard.Tickers == "" {
		cfg.Dashboard.Tickers = "AAPL, TSLA, NVDA"
	}
	if cfg.Dashboard.Period == "" {
		cfg.Dashboard.Period = "1y"
	}
	if cfg.Dashboard.RefreshSeconds == 0 {
		cfg.Dashboard.RefreshSeconds = 60
	}
	if cfg.Cache.HistoryTTLSeconds == 0 {
		cfg.Cache.HistoryTTLSeconds = 3600
	}
	if cfg.Cache.InfoTTLSeconds == 0 {
		cfg.Cache.InfoTTLSeconds = 3600
	}
	if cfg.Cache.NewsTTLSeconds == 0 {
		cfg.Cache.NewsTTLSeconds = 1800
	}
	if cfg.HTTP.TimeoutSeconds == 0 {
		cfg.HTTP.TimeoutSeconds = 10
	}
	if cfg.HTTP.LogoTimeoutSeconds == 0 {
		cfg.HTTP.LogoTimeoutSeconds = 5
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if len(model.ParseTickers(c.Dashboard.Tickers)) == 0 {
		return fmt.Errorf("dashboard.tickers must name at least one symbol")
	}
	if !model.ValidPeriod(c.Dashboard.Period) {
		return fmt.Errorf("dashboard.period %q is not one of %v", c.Dashboard.Period, model.Periods)
	}
	if c.Dashboard.RefreshSeconds < 10 || c.Dashboard.RefreshSeconds > 300 {
		return fmt.Errorf("dashboard.refresh_seconds must be within 10..300, got %d", c.Dashboard.RefreshSeconds)
	}
	if c.HTTP.TimeoutSeconds < 1 {
		return fmt.Errorf("http.timeout_seconds must be positive")
	}
	return nil
}
