package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	appAnalysis "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/app/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/classifier"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/config"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	handlers "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/handlers/http"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/cache"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/database"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/httpx"
	infraLogger "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/logger"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/providers/gemini"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/repository"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/youtube"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/prescreen"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/rules"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("config file not loaded, relying on environment")
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := repository.Migrate(db.DB); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	cacheClient, err := cache.NewClient(&cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}

	repo := cache.NewCachedAnalysisRepository(
		repository.NewAnalysisRepository(db.DB),
		cacheClient,
		logger,
		time.Duration(cfg.Redis.TTL)*time.Second,
	)

	specs, err := cfg.RuleSpecs()
	if err != nil {
		logger.Fatalf("invalid rules config: %v", err)
	}
	var engine *rules.Engine
	if specs != nil {
		engine, err = rules.NewEngine(specs)
	} else {
		engine, err = rules.NewDefaultEngine()
	}
	if err != nil {
		logger.Fatalf("failed to compile detection rules: %v", err)
	}
	graph := toxicity.DefaultGraph()
	scorer := prescreen.NewScorer(engine, graph, cfg.Analysis.PrescreenThreshold)

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		logger.Fatalf("failed to initialize gemini client: %v", err)
	}
	analyzer := classifier.NewBatchAnalyzer(geminiClient, cfg.Analysis.BatchSize, logger)

	youtubeClient := youtube.NewClient(
		httpx.NewFastHTTPClient(httpx.FastHTTPClientConfig{Timeout: 30 * time.Second}),
		httpx.NewCircuitBreaker("youtube", 30*time.Second, 5),
		logger,
		cfg.YouTube.APIKey,
		cfg.YouTube.BaseURL,
	)

	service := appAnalysis.NewService(
		youtubeClient,
		scorer,
		analyzer,
		appAnalysis.NewAssembler(cfg.Analysis.MaliciousThreshold),
		repo,
		logger,
		cfg.Analysis.MaxComments,
	)

	apiServer := server.NewAPIServer(server.APIServerDI{
		HandlerTransport: handlers.HandlerTransport{
			AnalyzeVideoHandler: handlers.NewAnalyzeVideoHandler(logger, service),
			GetAnalysisHandler:  handlers.NewGetAnalysisHandler(logger, service),
			PrescreenHandler:    handlers.NewPrescreenHandler(logger, scorer),
			GetTaxonomyHandler:  handlers.NewGetTaxonomyHandler(graph),
			GetVersionHandler:   handlers.NewGetVersionHandler(logger),
		},
		Config: cfg,
		Logger: logger,
	})

	go func() {
		if err := apiServer.Run(); err != nil {
			logger.WithError(err).Fatal("api server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := apiServer.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down api server")
	}
}
