package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func LoadConfig(filename string) (*AppConfig, error) {
	viper.SetConfigName(filename)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	config := GetDefaultConfig()
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read the file %w", err)
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error reading the config file %w", err)
	}
	return config, nil
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			HTTPAddr:     ":8000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Scraper: ScraperConfig{
			FetchTimeout: 30 * time.Second,
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
			MaxBodyBytes: 10 << 20,
		},
		Cache: CacheConfig{
			TTL: 300 * time.Second,
		},
	}
}
