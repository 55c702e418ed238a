package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Analysis
	AnalyzeVideoHandler Handler
	GetAnalysisHandler  Handler
	PrescreenHandler    Handler

	// Metadata
	GetTaxonomyHandler Handler
	GetVersionHandler  Handler
}
