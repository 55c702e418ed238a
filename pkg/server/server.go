package server

import (
	"fmt"
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/config"
	handlers "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/handlers/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		HandlerTransport handlers.HandlerTransport
		Config           *config.Config
		Logger           *logrus.Logger
	}
	APIServer struct {
		config           *config.Config
		logger           *logrus.Logger
		router           *fiber.App
		handlerTransport handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	router := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          5 * time.Minute,
		IdleTimeout:           120 * time.Second,
	})
	router.Use(recover.New())

	return &APIServer{
		config:           di.Config,
		logger:           di.Logger,
		router:           router,
		handlerTransport: di.HandlerTransport,
	}
}

func (s *APIServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting api server")
	return s.router.Listen(addr)
}

func (s *APIServer) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		analyses := v1.Group("/analyses")
		{
			analyses.Post("", s.handlerTransport.AnalyzeVideoHandler.Handle)
			analyses.Get("/:analysis_id", s.handlerTransport.GetAnalysisHandler.Handle)
		}
		v1.Post("/prescreen", s.handlerTransport.PrescreenHandler.Handle)
		v1.Get("/taxonomy", s.handlerTransport.GetTaxonomyHandler.Handle)
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)
	}
}

func (s *APIServer) setupHealthCheck() {
	s.router.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}

func (s *APIServer) Shutdown() error {
	return s.router.Shutdown()
}
