package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"clob/api/httpserver"
	"clob/domain/orderbook"
	"clob/infra/config"
	"clob/infra/memory"
	"clob/infra/sequence"
	"clob/jobs/seeder"
	"clob/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	// ---------------- Domain ----------------

	seqGen := sequence.New(0)
	pool := memory.NewPool(func() *orderbook.Order {
		return &orderbook.Order{}
	})
	book := orderbook.New(seqGen, pool)

	// ---------------- Service ----------------

	svc := service.New(book, sugar)

	// ---------------- Seed ----------------

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seed, err := seeder.New(svc, cfg.SeedMidPrice, cfg.SeedSpread, cfg.SeedBuyBias, rng, sugar)
	if err != nil {
		sugar.Fatalw("seeder init failed", "error", err)
	}
	seed.Run(cfg.SeedOrders)

	// ---------------- HTTP ----------------

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpserver.New(svc, cfg.CORSOrigin, sugar),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	sugar.Infow("CLOB engine running", "addr", cfg.ListenAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("http server exited", "error", err)
	}
}
