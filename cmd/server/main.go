package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"idscan/internal/cache"
	"idscan/internal/config"
	"idscan/internal/extract"
	"idscan/internal/handlers"
	"idscan/internal/router"
	"idscan/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func run() error {
	cfg := config.FromEnv()
	ctx := context.Background()

	// record store
	var recordStore store.RecordStore
	switch cfg.StoreBackend {
	case "postgres":
		pg, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		recordStore = pg
	default:
		log.Println("no DATABASE_URL set, using in-memory record store")
		recordStore = store.NewMemory()
	}

	// extraction client
	extractor, err := extract.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ExtractTimeout)
	if err != nil {
		return err
	}
	defer extractor.Close()

	// optional extraction cache
	var extractionCache *cache.Extraction
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(opt)
		defer rdb.Close()
		extractionCache = cache.NewExtraction(rdb)
		log.Println("extraction cache enabled")
	}

	h := handlers.New(recordStore, extractor, extractionCache)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.RegisterRouter(h),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Println("listening on", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
