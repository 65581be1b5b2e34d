package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jofairden/threadpool-busywaitproblem/internal/shared/config"
	"github.com/Jofairden/threadpool-busywaitproblem/internal/shared/logging"
	"github.com/Jofairden/threadpool-busywaitproblem/pkg/metrics"
	"github.com/Jofairden/threadpool-busywaitproblem/pkg/threadpool"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.LoadDemo(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)

	pool, err := threadpool.New(cfg.Pool.Workers, threadpool.WithLogger(logger.Slog()))
	if err != nil {
		logger.Fatal("Failed to create pool", "error", err)
	}

	if cfg.Metrics.Addr != "" {
		registry := metrics.NewRegistry(pool)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Error("Metrics server error", "error", err)
			}
		}()
		logger.Info("Serving metrics", "addr", cfg.Metrics.Addr)
	}

	runID := uuid.New()
	logger.Info("Starting demo run",
		"run_id", runID.String(),
		"workers", cfg.Pool.Workers,
		"tasks", cfg.Demo.Tasks,
	)

	start := time.Now()

	for i := range cfg.Demo.Tasks {
		err := pool.Submit(func() {
			logger.Info("Hello from work item", "item", i)
		})
		if err != nil {
			logger.Error("Submission rejected", "item", i, "error", err)
		}
	}

	// Shutdown drains the queue, so every submitted work item has run by
	// the time the elapsed report is printed.
	pool.Shutdown()

	stats := pool.Stats()
	logger.Info("Demo run finished",
		"run_id", runID.String(),
		"completed", stats.Completed,
		"failed", stats.Failed,
		"elapsed", time.Since(start).String(),
	)
}
