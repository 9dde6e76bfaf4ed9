package main

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"NeonQuotes/internal/board"
	"NeonQuotes/internal/chart"
	"NeonQuotes/internal/config"
	"NeonQuotes/internal/lookup"
	"NeonQuotes/internal/market"
	"NeonQuotes/internal/model"
	"NeonQuotes/internal/news"
	"NeonQuotes/internal/refresh"
	"NeonQuotes/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] NeonQuotes starting...")

	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] .env not loaded: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	tickers := model.ParseTickers(cfg.Dashboard.Tickers)
	interval := time.Duration(cfg.Dashboard.RefreshSeconds) * time.Second
	httpTimeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second

	// Init data clients
	fetcher := market.NewYahooFetcher(cfg.Proxy, httpTimeout)
	log.Printf("[INFO] market data source: %s", fetcher.Name())
	newsFetcher := news.NewFinnhubFetcher(cfg.News.APIKey, cfg.Proxy, httpTimeout)
	if !newsFetcher.HasKey() {
		log.Println("[INFO] no news API key configured, news lookups disabled")
	}

	// Init cached lookup layer
	layer := lookup.NewLayer(fetcher, newsFetcher,
		time.Duration(cfg.Cache.HistoryTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.InfoTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.NewsTTLSeconds)*time.Second,
		nil)

	// Init renderer chain: glow PNG first, interactive fallback second
	chain := chart.NewChain(chart.NewGlowRenderer(), chart.NewEChartsRenderer())

	// Optional chart background
	var bg image.Image
	if cfg.Dashboard.BackgroundImage != "" {
		if img, err := loadImage(cfg.Dashboard.BackgroundImage); err != nil {
			log.Printf("[WARN] load background image: %v", err)
		} else {
			bg = img
		}
	}

	b := board.New(layer, chain, bg, time.Duration(cfg.HTTP.LogoTimeoutSeconds)*time.Second)
	srv := server.New()

	// Full reload: run the board and publish the snapshot. A panic escaping
	// the whole cycle is contained here; the previous snapshot stays live.
	cycle := func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] rendering cycle: %v", r)
			}
		}()
		started := time.Now()
		sections := b.Run(tickers, cfg.Dashboard.Period)
		srv.Update(&server.Snapshot{Sections: sections, GeneratedAt: time.Now()})
		log.Printf("[INFO] refreshed %d tickers in %v", len(tickers), time.Since(started).Round(time.Millisecond))
	}

	loop := &refresh.Loop{
		State:    refresh.NewState(time.Now()),
		Interval: interval,
		Run:      cycle,
	}
	srv.OnRequest = func() { loop.Tick(time.Now()) }

	// Background cadence so the page stays warm between requests
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %ds", cfg.Dashboard.RefreshSeconds), func() {
		loop.Force(time.Now())
	}); err != nil {
		log.Fatalf("[FATAL] register refresh job: %v", err)
	}

	// Initial load before serving
	loop.Force(time.Now())
	c.Start()
	defer c.Stop()

	httpServer := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: srv.Handler(),
	}
	go func() {
		log.Printf("[INFO] dashboard listening on %s", cfg.Server.Listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] NeonQuotes stopped")
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
