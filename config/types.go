package config

import "time"

type AppConfig struct {
	Server  ServerConfig
	Scraper ScraperConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	HTTPAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ScraperConfig struct {
	FetchTimeout time.Duration
	UserAgent    string
	MaxBodyBytes int64
	ProxyUrl     string
	ProxyEnabled bool
}

type CacheConfig struct {
	TTL time.Duration
}
