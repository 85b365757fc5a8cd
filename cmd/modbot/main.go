package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"modbot/internal/actions"
	"modbot/internal/actions/handlers/kafka"
	"modbot/internal/actions/handlers/logging"
	actionmetrics "modbot/internal/actions/metrics"
	"modbot/internal/actions/store/memory"
	"modbot/internal/actions/store/postgres"
	"modbot/internal/gateway"
	"modbot/internal/moderation"
	"modbot/internal/moderation/claims"
	"modbot/internal/moderation/designations"
	modmetrics "modbot/internal/moderation/metrics"
	"modbot/internal/platform/config"
	"modbot/internal/platform/httpserver"
	"modbot/internal/platform/logger"
	platformredis "modbot/internal/platform/redis"
	"modbot/internal/token"
	httptransport "modbot/internal/transport/http"
)

// main wires high-level dependencies and keeps the process lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Action record store: postgres when configured, in-memory otherwise.
	var store actions.Store
	if cfg.Postgres.DSN != "" {
		db, err := postgres.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = postgres.New(db)
	} else {
		store = memory.New()
	}

	// Action handlers, in notification order.
	handlers := []actions.Handler{logging.New(log)}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaHandler, err := kafka.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka handler setup failed", "error", err)
			os.Exit(1)
		}
		defer kafkaHandler.Close()
		handlers = append(handlers, kafkaHandler)
	}

	actionMetrics := actionmetrics.New()
	dispatcher := actions.NewDispatcher(handlers,
		actions.WithLogger(log),
		actions.WithMetrics(actionMetrics),
	)
	actionService := actions.NewService(store, dispatcher, actionMetrics)

	// Designation and authorization services. The in-memory implementations
	// stand in until the guild management backend is adapted here.
	var designationService moderation.DesignationService = designations.NewMemory()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		designationService = designations.NewCached(designationService, redisClient, cfg.Moderation.DesignationCacheTTL, log)
	}
	authorizationService := claims.NewMemory()

	// TODO: replace MemoryTransport with the platform gateway adapter once
	// the connection lifecycle work lands.
	bus := gateway.NewBus(gateway.Snowflake(cfg.BotUserID), gateway.NewMemoryTransport())

	modMetrics := modmetrics.New()
	chain := moderation.NewChain(
		bus,
		designationService,
		authorizationService,
		moderation.NewInviteMatcher(cfg.Moderation.MatchTimeout),
		cfg.Moderation.LookupTimeout,
		log,
		modMetrics,
	)
	executor := moderation.NewExecutor(bus, log, modMetrics)
	pipeline := moderation.NewPipeline(bus, chain, executor, actionService, log)
	pipeline.Start()

	tokens := token.NewService(cfg.JWTSigningKey, "modbot", "modbot-ops")
	router := httptransport.NewRouter(httptransport.NewHandler(actionService, log), tokens, log)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting modbot", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		pipeline.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
