package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"draftgen/internal/config"
	"draftgen/internal/domain"
	"draftgen/internal/feeds"
	"draftgen/internal/generate"
	"draftgen/internal/publisher"
	"draftgen/internal/scheduler"
	"draftgen/internal/service"
	"draftgen/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	mode := flag.String("mode", "run", "run once or serve the generation schedule (run|serve)")
	count := flag.Int("count", 0, "drafts to generate this run (0 = configured max)")
	dryRun := flag.Bool("dry-run", false, "generate but never persist")
	sections := flag.String("sections", "", "comma-separated sections to include (empty = all)")
	exclude := flag.String("exclude", "", "comma-separated sections to exclude")
	track := flag.String("track", "single", "schedule track for serve mode (single|multi)")
	focus := flag.String("focus", "", "sports focus mode override")
	budget := flag.Int("budget", 0, "daily token budget override (0 = configured)")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	store := postgres.NewDraftStore(db)

	fetcher := feeds.NewGofeedFetcher(&http.Client{Timeout: 30 * time.Second})
	collector := feeds.NewCollector(fetcher, logger)

	provider := generate.NewOpenAIClient(cfg.Provider.APIKey, cfg.Provider.Model, logger)
	builder := generate.NewBuilder(provider, cfg.Pipeline.MinContentWords, cfg.Provider.MaxTokens, logger)

	runService := service.NewRunService(store, collector, builder, pub, cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch *mode {
	case "run":
		req := domain.RunRequest{
			Count:           *count,
			DryRun:          *dryRun,
			IncludeSections: splitSections(*sections),
			ExcludeSections: splitSections(*exclude),
			BudgetOverride:  *budget,
			FocusMode:       *focus,
		}
		result, err := runService.Run(ctx, req)
		if err != nil {
			logger.Error("run failed", "error", err)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Error("failed to encode result", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))

	case "serve":
		sched := scheduler.NewScheduler(runService, *track, logger)
		logger.Info("starting draft generation service", "track", *track)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}

	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
}

func splitSections(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
