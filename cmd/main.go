package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/DataFiling/ScrapeHawk/config"
	"github.com/DataFiling/ScrapeHawk/internal/cache"
	"github.com/DataFiling/ScrapeHawk/internal/scraper"
	"github.com/DataFiling/ScrapeHawk/pkg/scrape"
)

func main() {
	var (
		configFile = flag.String("config", "scrapehawk.yaml", "Path to configuration file")
		addr       = flag.String("addr", "", "Listen address, overrides the config file")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Printf("Failed to load configuration from %s: %v", *configFile, err)
		log.Println("Using default configuration...")
		cfg = config.GetDefaultConfig()
	}
	if *addr != "" {
		cfg.Server.HTTPAddr = *addr
	}

	client := scraper.NewHttpClient(&cfg.Scraper)
	store := cache.NewStore(cfg.Cache.TTL)
	api := scrape.NewScrapeAPI(client, store)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})
	api.RegisterRoutes(app)

	go func() {
		log.Printf("Starting scraper API on %s", cfg.Server.HTTPAddr)
		if err := app.Listen(cfg.Server.HTTPAddr); err != nil {
			log.Fatalf("Fiber app failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Fiber shutdown failed: %v", err)
	}
	log.Println("Server exited properly")
}
