package prescreen

import (
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/rules"
)

// DefaultToxicThreshold marks a verdict as likely toxic when the
// estimated score reaches it.
const DefaultToxicThreshold = 30

// categoryBonusCap bounds the flat multi-category bonus used when no
// relation edge connects the matched categories.
const categoryBonusCap = 15

// Verdict is the rule-only estimate for one comment. It is cheap and
// explainable, usable either as a final skip decision or as a prior for
// the contextual stage.
type Verdict struct {
	EstimatedScore int                 `json:"estimatedScore"`
	Categories     []toxicity.Category `json:"categories"`
	IsLikelyToxic  bool                `json:"isLikelyToxic"`
	Matches        []rules.MatchResult `json:"matches,omitempty"`
}

// Scorer combines rule matches with relation-graph modifiers into an
// estimated score. Stateless once built; safe for concurrent use.
type Scorer struct {
	engine    *rules.Engine
	graph     *toxicity.Graph
	threshold int
}

func NewScorer(engine *rules.Engine, graph *toxicity.Graph, threshold int) *Scorer {
	if threshold <= 0 {
		threshold = DefaultToxicThreshold
	}
	return &Scorer{
		engine:    engine,
		graph:     graph,
		threshold: threshold,
	}
}

// Score evaluates the rule table and derives the estimated verdict.
// The dominant rule's modifier is taken as the base (a single strong
// signal must not be diluted or overstated by weak co-matches), then a
// bonus is added: the relation-graph modifier for the matched category
// set, or the capped linear category-count bonus when no relation edge
// exists but several distinct categories still fired.
func (s *Scorer) Score(text string) Verdict {
	matches := s.engine.Evaluate(text)
	if len(matches) == 0 {
		return Verdict{EstimatedScore: 0, Categories: []toxicity.Category{}, IsLikelyToxic: false}
	}

	maxScore := 0
	seen := make(map[toxicity.Category]struct{})
	var categories []toxicity.Category
	for _, m := range matches {
		if m.ScoreModifier > maxScore {
			maxScore = m.ScoreModifier
		}
		if _, ok := seen[m.Category]; !ok {
			seen[m.Category] = struct{}{}
			categories = append(categories, m.Category)
		}
	}

	relationBonus := s.graph.CombinedSeverityModifier(categories)
	categoryBonus := (len(categories) - 1) * 5
	if categoryBonus > categoryBonusCap {
		categoryBonus = categoryBonusCap
	}
	bonus := relationBonus
	if categoryBonus > bonus {
		bonus = categoryBonus
	}

	estimated := toxicity.ClampScore(maxScore + bonus)

	return Verdict{
		EstimatedScore: estimated,
		Categories:     categories,
		IsLikelyToxic:  estimated >= s.threshold,
		Matches:        matches,
	}
}
