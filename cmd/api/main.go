package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/credit-ledger/internal/api"
	"github.com/baharkarakas/credit-ledger/internal/auth"
	"github.com/baharkarakas/credit-ledger/internal/cache"
	"github.com/baharkarakas/credit-ledger/internal/config"
	"github.com/baharkarakas/credit-ledger/internal/db"
	"github.com/baharkarakas/credit-ledger/internal/events"
	"github.com/baharkarakas/credit-ledger/internal/logger"
	"github.com/baharkarakas/credit-ledger/internal/metrics"
	"github.com/baharkarakas/credit-ledger/internal/middleware"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
	"github.com/baharkarakas/credit-ledger/internal/repository/memory"
	"github.com/baharkarakas/credit-ledger/internal/repository/postgres"
	"github.com/baharkarakas/credit-ledger/internal/services"
	"github.com/baharkarakas/credit-ledger/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)
	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repos repo.Set
	switch cfg.StoreDriver {
	case "memory":
		log.Warn("using in-memory store, data is lost on restart")
		repos = memory.NewRepositories()
	default:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}
		repos = postgres.NewRepositories(pool)
	}

	var (
		revoker auth.Revoker = auth.NopRevoker{}
		idem    middleware.IdempotencyStore
	)
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("redis connect", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		revoker = cache.NewTokenRevoker(rdb)
		idem = cache.NewIdempotencyStore(rdb)
	} else {
		log.Info("redis not configured; logout revocation and idempotency replay disabled")
	}

	var pub events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		mq, err := events.DialRabbitMQ(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Error("rabbitmq connect", "err", err)
			os.Exit(1)
		}
		defer mq.Close()
		pub = mq
	}

	metrics.Init()
	wp := worker.NewPool(4, 256)
	dispatcher := events.NewDispatcher(pub, wp)

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	ledgerSvc := services.NewLedgerService(repos.Clients, repos.Transactions)

	r := api.NewRouter(api.RouterDeps{
		Cfg:          cfg,
		Auth:         middleware.NewAuthMiddleware(tm, revoker, cfg.Env),
		UserSvc:      services.NewUserService(repos.Users, tm, revoker),
		ClientSvc:    services.NewClientService(repos.Clients, dispatcher),
		TxnSvc:       services.NewTransactionService(repos.Clients, repos.Transactions, dispatcher),
		LedgerSvc:    ledgerSvc,
		StatementSvc: services.NewStatementService(ledgerSvc, cfg.CurrencyLabel),
		Idempotency:  idem,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	// drain queued events before connections close
	wp.Stop()
}
