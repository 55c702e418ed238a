package classifier

import (
	"context"
	"fmt"
	"math"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	"github.com/sirupsen/logrus"
)

// DefaultBatchSize bounds one classifier call. The limit protects the
// external model's input-size and cost constraints.
const DefaultBatchSize = 20

// BatchAnalyzer partitions comments into fixed-size ordered batches and
// runs the classifier once per batch, strictly sequentially. Sequential
// calls are a rate-limit backpressure decision, not a missed
// parallelism opportunity.
type BatchAnalyzer struct {
	classifier Classifier
	batchSize  int
	logger     *logrus.Logger
}

func NewBatchAnalyzer(classifier Classifier, batchSize int, logger *logrus.Logger) *BatchAnalyzer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &BatchAnalyzer{
		classifier: classifier,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// Analyze classifies all comments. A single batch is passed through
// unchanged. For multiple batches any failure aborts the whole
// operation with the error kind intact; no partial result is ever
// returned.
func (a *BatchAnalyzer) Analyze(ctx context.Context, comments []analysis.Comment) (*BatchJudgment, error) {
	if len(comments) == 0 {
		return nil, fmt.Errorf("batch analyzer: %w", domain.ErrNoComments)
	}

	batches := partition(comments, a.batchSize)
	if len(batches) == 1 {
		return a.classifier.Classify(ctx, batches[0])
	}

	judgments := make([]*BatchJudgment, 0, len(batches))
	for i, batch := range batches {
		a.logger.WithFields(logrus.Fields{
			"batch":   i + 1,
			"batches": len(batches),
			"size":    len(batch),
		}).Debug("classifying comment batch")

		judgment, err := a.classifier.Classify(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
		}
		judgments = append(judgments, judgment)
	}

	return merge(judgments), nil
}

func partition(comments []analysis.Comment, size int) [][]analysis.Comment {
	var batches [][]analysis.Comment
	for start := 0; start < len(comments); start += size {
		end := start + size
		if end > len(comments) {
			end = len(comments)
		}
		batches = append(batches, comments[start:end])
	}
	return batches
}

// merge combines per-batch judgments into one. Comment order follows
// batch order, which follows the original input order. The overall
// score is the unweighted mean over all per-comment scores rather than
// a mean of batch means, so unequal batch sizes introduce no bias. The
// insight is taken from the last batch.
func merge(judgments []*BatchJudgment) *BatchJudgment {
	var comments []CommentJudgment
	countsByLabel := make(map[string]int)
	var labelOrder []string

	for _, j := range judgments {
		comments = append(comments, j.Comments...)
		for _, cc := range j.Summary.CategoryBreakdown {
			if _, seen := countsByLabel[cc.Category]; !seen {
				labelOrder = append(labelOrder, cc.Category)
			}
			countsByLabel[cc.Category] += cc.Count
		}
	}

	total := 0
	for _, c := range comments {
		total += c.ToxicityScore
	}
	overall := 0
	if len(comments) > 0 {
		overall = int(math.Round(float64(total) / float64(len(comments))))
	}
	overall = toxicity.ClampScore(overall)

	breakdown := make([]CategoryCount, 0, len(labelOrder))
	for _, label := range labelOrder {
		breakdown = append(breakdown, CategoryCount{Category: label, Count: countsByLabel[label]})
	}

	return &BatchJudgment{
		Comments: comments,
		Summary: Summary{
			OverallToxicityScore: overall,
			ToxicityLevel:        toxicity.LevelFromScore(overall),
			CategoryBreakdown:    breakdown,
			Insight:              judgments[len(judgments)-1].Summary.Insight,
		},
	}
}
