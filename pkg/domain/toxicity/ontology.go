package toxicity

// RelationType describes how two co-occurring categories interact.
type RelationType string

const (
	Amplifies   RelationType = "AMPLIFIES"
	CoOccurs    RelationType = "CO_OCCURS"
	EscalatesTo RelationType = "ESCALATES_TO"
	MitigatedBy RelationType = "MITIGATED_BY"
)

// SeverityRange is the score band a category can contribute on its own.
type SeverityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Example pairs a Korean sample comment with its English gloss.
type Example struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// OntologyNode holds the static definition of one category.
type OntologyNode struct {
	Category   Category      `json:"category"`
	Domain     Domain        `json:"domain"`
	SubTypes   []SubType     `json:"subTypes"`
	Severity   SeverityRange `json:"severity"`
	Indicators []string      `json:"indicators"`
	Examples   []Example     `json:"examples"`
}

// CategoryRelation is a directed edge between two categories. Multiple
// edges between the same pair are permitted; each contributes its own
// modifier.
type CategoryRelation struct {
	From             Category     `json:"from"`
	To               Category     `json:"to"`
	Type             RelationType `json:"type"`
	SeverityModifier int          `json:"severityModifier"`
	Description      string       `json:"description"`
}

// Graph is the read-only taxonomy: one node per category plus the
// relation edge list. Built once at startup; safe for unsynchronized
// concurrent reads.
type Graph struct {
	nodes     map[Category]OntologyNode
	relations []CategoryRelation
}

// NewGraph indexes the given nodes and keeps the relation edge list
// as-is. The edge list is small and static, so lookups scan linearly.
func NewGraph(nodes []OntologyNode, relations []CategoryRelation) *Graph {
	indexed := make(map[Category]OntologyNode, len(nodes))
	for _, n := range nodes {
		indexed[n.Category] = n
	}
	return &Graph{
		nodes:     indexed,
		relations: relations,
	}
}

// DefaultGraph builds the graph from the built-in taxonomy tables.
func DefaultGraph() *Graph {
	return NewGraph(defaultOntology, defaultRelations)
}

// Node returns the ontology node for a category.
func (g *Graph) Node(category Category) (OntologyNode, bool) {
	n, ok := g.nodes[category]
	return n, ok
}

// NodesInDomain returns every node belonging to the given domain, in
// taxonomy declaration order.
func (g *Graph) NodesInDomain(domain Domain) []OntologyNode {
	var out []OntologyNode
	for _, c := range Categories {
		if n, ok := g.nodes[c]; ok && n.Domain == domain {
			out = append(out, n)
		}
	}
	return out
}

// Relations returns every edge of the graph in declaration order.
func (g *Graph) Relations() []CategoryRelation {
	out := make([]CategoryRelation, len(g.relations))
	copy(out, g.relations)
	return out
}

// RelationsFor returns every edge touching the category, in either
// direction.
func (g *Graph) RelationsFor(category Category) []CategoryRelation {
	var out []CategoryRelation
	for _, r := range g.relations {
		if r.From == category || r.To == category {
			out = append(out, r)
		}
	}
	return out
}

// CombinedSeverityModifier sums the modifiers of every edge whose both
// endpoints are present in the category set. Co-occurring toxicity
// types compound: profanity aimed at a person is worse than profanity
// alone. Returns 0 for fewer than two distinct categories. The sum is
// not capped here; clamping happens at scoring time.
func (g *Graph) CombinedSeverityModifier(categories []Category) int {
	present := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		present[c] = struct{}{}
	}
	if len(present) < 2 {
		return 0
	}

	modifier := 0
	for _, r := range g.relations {
		if _, ok := present[r.From]; !ok {
			continue
		}
		if _, ok := present[r.To]; !ok {
			continue
		}
		modifier += r.SeverityModifier
	}
	return modifier
}
