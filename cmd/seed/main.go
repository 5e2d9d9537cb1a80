package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"sitefix/internal/config"
	"sitefix/internal/kv"
	"sitefix/internal/repository"
	"sitefix/internal/store"
)

// Writes every collection's seed data into the configured store, overwriting
// whatever is there. Run once before first start, or any time a clean demo
// state is wanted.
func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR is empty, seeding an in-memory store that dies with this process")
	}
	backend := kv.NewBackend(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	st := store.New(backend, logger)

	repository.SeedAll(context.Background(), st)
	log.Println("seed data written")
}
