package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orbita/internal/assessment"
	"orbita/internal/assessment/handler"
	"orbita/internal/audit"
	"orbita/internal/catalog"
	"orbita/internal/platform/config"
	"orbita/internal/platform/httpserver"
	"orbita/internal/platform/logger"
	"orbita/internal/platform/metrics"
	"orbita/internal/platform/redis"
)

// main wires the dependencies and keeps the server lifecycle small. Business
// logic lives in the internal packages.
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogs, err := catalog.Load()
	if err != nil {
		log.Error("load catalogs", "error", err)
		return err
	}

	// Assessment storage: Postgres when configured, in-memory otherwise.
	var store assessment.Store = assessment.NewInMemoryStore()
	if cfg.Database.URL != "" {
		pool, err := assessment.Connect(ctx, cfg.Database.URL)
		if err != nil {
			log.Error("connect database", "error", err)
			return err
		}
		defer pool.Close()
		store = assessment.NewPostgresStore(pool)
	}

	// The audit trail shares the database when one is configured.
	var auditStore audit.Store = audit.NewInMemoryStore()
	if cfg.Database.URL != "" {
		db, err := audit.OpenPostgres(cfg.Database.URL)
		if err != nil {
			log.Error("open audit database", "error", err)
			return err
		}
		defer db.Close()
		auditStore = audit.NewPostgresStore(db)
	}

	auditOpts := []audit.Option{audit.WithLogger(log)}
	if len(cfg.Kafka.Brokers) > 0 {
		sink, err := audit.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("connect kafka", "error", err)
			return err
		}
		defer sink.Close()
		auditOpts = append(auditOpts, audit.WithSink(sink))
	}

	// Operational audit events drain through a worker so request paths never
	// block on the trail.
	inbox := make(chan audit.Event, 256)
	auditOpts = append(auditOpts, audit.WithInbox(inbox))
	auditor := audit.NewPublisher(auditStore, auditOpts...)
	worker := audit.NewWorker(auditStore, inbox, log)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	svcOpts := []assessment.ServiceOption{
		assessment.WithLogger(log),
		assessment.WithMetrics(m),
		assessment.WithAudit(auditor),
		assessment.WithRenderTimeout(cfg.Report.RenderTimeout),
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		svcOpts = append(svcOpts, assessment.WithCache(
			assessment.NewRedisReportCache(redisClient.Client, cfg.Redis.ReportTTL)))
	}

	svc := assessment.NewService(store, catalogs, svcOpts...)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log, m).Register(router)

	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("orbita listening", "addr", cfg.Server.Addr, "frameworks", len(catalogs.Frameworks()))

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return err
	}

	// Let the worker flush the remaining operational events.
	<-workerDone
	log.Info("shutdown complete")
	return nil
}
