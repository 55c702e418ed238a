package http

import (
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	"github.com/gofiber/fiber/v2"
)

type taxonomyResponse struct {
	Categories []toxicity.OntologyNode     `json:"categories"`
	Relations  []toxicity.CategoryRelation `json:"relations"`
}

type getTaxonomyHandler struct {
	graph *toxicity.Graph
}

func NewGetTaxonomyHandler(graph *toxicity.Graph) Handler {
	return &getTaxonomyHandler{graph: graph}
}

// Handle @Summary Get the toxicity taxonomy
// @Description Returns the fixed category ontology and relation edges
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} taxonomyResponse "Category nodes and relations"
// @Router /api/v1/taxonomy [get]
func (h *getTaxonomyHandler) Handle(c *fiber.Ctx) error {
	nodes := make([]toxicity.OntologyNode, 0, len(toxicity.Categories))
	for _, category := range toxicity.Categories {
		if node, ok := h.graph.Node(category); ok {
			nodes = append(nodes, node)
		}
	}
	return c.Status(fiber.StatusOK).JSON(taxonomyResponse{
		Categories: nodes,
		Relations:  h.graph.Relations(),
	})
}
