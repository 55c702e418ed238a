package rules

import (
	"fmt"
	"regexp"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
)

// Confidence is informational rule metadata. It is not part of the
// scoring arithmetic but is preserved for downstream consumers.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// RuleSpec is the externally tunable form of a detection rule: patterns
// are plain strings so the table can come from configuration. Specs are
// compiled once at startup; a malformed pattern is a load-time error,
// never a per-comment failure.
type RuleSpec struct {
	ID               string     `mapstructure:"id"`
	Category         string     `mapstructure:"category"`
	Description      string     `mapstructure:"description"`
	Patterns         []string   `mapstructure:"patterns"`
	NegativePatterns []string   `mapstructure:"negative_patterns"`
	ScoreModifier    int        `mapstructure:"score_modifier"`
	Confidence       Confidence `mapstructure:"confidence"`
}

// DetectionRule is a compiled rule. Patterns are ordered and
// first-match-wins within the rule; negative patterns veto the whole
// rule.
type DetectionRule struct {
	ID               string
	Category         toxicity.Category
	Description      string
	Patterns         []*regexp.Regexp
	NegativePatterns []*regexp.Regexp
	ScoreModifier    int
	Confidence       Confidence
}

// MatchResult is one rule firing on one comment. Ephemeral, never
// persisted.
type MatchResult struct {
	RuleID        string            `json:"ruleId"`
	Category      toxicity.Category `json:"category"`
	Confidence    Confidence        `json:"confidence"`
	ScoreModifier int               `json:"scoreModifier"`
	MatchedText   string            `json:"matchedText"`
}

// Engine evaluates a fixed rule table against comment text. Immutable
// after construction; safe for concurrent use.
type Engine struct {
	rules []DetectionRule
}

// NewEngine compiles the given specs. Any invalid pattern, duplicate
// id, unknown category or unknown confidence fails the whole load.
func NewEngine(specs []RuleSpec) (*Engine, error) {
	seen := make(map[string]struct{}, len(specs))
	rules := make([]DetectionRule, 0, len(specs))

	for _, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("rule with empty id")
		}
		if _, dup := seen[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %q", spec.ID)
		}
		seen[spec.ID] = struct{}{}

		if !toxicity.IsValidCategory(spec.Category) {
			return nil, fmt.Errorf("rule %s: unknown category %q", spec.ID, spec.Category)
		}
		switch spec.Confidence {
		case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		default:
			return nil, fmt.Errorf("rule %s: unknown confidence %q", spec.ID, spec.Confidence)
		}
		if len(spec.Patterns) == 0 {
			return nil, fmt.Errorf("rule %s: no patterns", spec.ID)
		}

		rule := DetectionRule{
			ID:            spec.ID,
			Category:      toxicity.Category(spec.Category),
			Description:   spec.Description,
			ScoreModifier: spec.ScoreModifier,
			Confidence:    spec.Confidence,
		}
		for _, p := range spec.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("rule %s: invalid pattern %q: %w", spec.ID, p, err)
			}
			rule.Patterns = append(rule.Patterns, re)
		}
		for _, p := range spec.NegativePatterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("rule %s: invalid negative pattern %q: %w", spec.ID, p, err)
			}
			rule.NegativePatterns = append(rule.NegativePatterns, re)
		}
		rules = append(rules, rule)
	}

	return &Engine{rules: rules}, nil
}

// NewDefaultEngine compiles the built-in Korean rule table.
func NewDefaultEngine() (*Engine, error) {
	return NewEngine(DefaultRuleSpecs())
}

// Rules returns the compiled rule table.
func (e *Engine) Rules() []DetectionRule {
	return e.rules
}

// Evaluate runs every rule against the text. Rules are independent: a
// comment may trigger zero, one or many rules across categories. Within
// a rule the first matching pattern is reported and the rest are
// skipped, so a rule contributes at most one result per comment.
func (e *Engine) Evaluate(text string) []MatchResult {
	var results []MatchResult

	for _, rule := range e.rules {
		if vetoed(rule.NegativePatterns, text) {
			continue
		}
		for _, pattern := range rule.Patterns {
			if loc := pattern.FindStringIndex(text); loc != nil {
				results = append(results, MatchResult{
					RuleID:        rule.ID,
					Category:      rule.Category,
					Confidence:    rule.Confidence,
					ScoreModifier: rule.ScoreModifier,
					MatchedText:   text[loc[0]:loc[1]],
				})
				break
			}
		}
	}

	return results
}

func vetoed(negatives []*regexp.Regexp, text string) bool {
	for _, np := range negatives {
		if np.MatchString(text) {
			return true
		}
	}
	return false
}
