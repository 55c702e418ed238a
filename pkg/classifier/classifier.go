package classifier

import (
	"context"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
)

// CommentJudgment is the contextual stage's verdict for one comment.
// Category labels are kept as raw strings: the classifier is an opaque
// collaborator and may invent labels outside the taxonomy, so filtering
// happens at assembly time.
type CommentJudgment struct {
	CommentID     string         `json:"commentId"`
	ToxicityScore int            `json:"toxicityScore"`
	ToxicityLevel toxicity.Level `json:"toxicityLevel"`
	Categories    []string       `json:"categories"`
	Explanation   string         `json:"explanation"`
	Suggestion    string         `json:"suggestion,omitempty"`
}

// CategoryCount is one entry of a batch-level category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Summary is the batch-level judgment.
type Summary struct {
	OverallToxicityScore int             `json:"overallToxicityScore"`
	ToxicityLevel        toxicity.Level  `json:"toxicityLevel"`
	CategoryBreakdown    []CategoryCount `json:"categoryBreakdown"`
	Insight              string          `json:"insight"`
}

// BatchJudgment is the structured result of one classifier call.
type BatchJudgment struct {
	Comments []CommentJudgment `json:"comments"`
	Summary  Summary           `json:"summary"`
}

// Classifier is the external contextual oracle. Implementations must
// return judgments whose commentIds are a subset of the request ids;
// omissions are tolerated downstream, mismatches are not.
type Classifier interface {
	Classify(ctx context.Context, comments []analysis.Comment) (*BatchJudgment, error)
}
