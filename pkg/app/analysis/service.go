package analysis

import (
	"context"
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/classifier"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/prescreen"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CommentSource supplies the raw material for an analysis. The pipeline
// never fetches comments itself.
type CommentSource interface {
	Video(ctx context.Context, videoID string) (*Video, error)
	Comments(ctx context.Context, videoID string, max int) ([]analysis.Comment, error)
}

// Service runs the full pipeline for one video: fetch, rule pre-screen,
// contextual classification of suspect comments, assembly, persistence.
// Independent analyses may run concurrently; the service holds no
// mutable state.
type Service struct {
	source      CommentSource
	scorer      *prescreen.Scorer
	analyzer    *classifier.BatchAnalyzer
	assembler   *Assembler
	repo        analysis.Repository
	logger      *logrus.Logger
	maxComments int
}

func NewService(
	source CommentSource,
	scorer *prescreen.Scorer,
	analyzer *classifier.BatchAnalyzer,
	assembler *Assembler,
	repo analysis.Repository,
	logger *logrus.Logger,
	maxComments int,
) *Service {
	if maxComments <= 0 {
		maxComments = 100
	}
	return &Service{
		source:      source,
		scorer:      scorer,
		analyzer:    analyzer,
		assembler:   assembler,
		repo:        repo,
		logger:      logger,
		maxComments: maxComments,
	}
}

// AnalyzeVideo analyzes the comments of one video and stores the
// report. Classifier failures propagate unmodified in kind; a zero
// comment video fails fast with domain.ErrNoComments instead of
// producing an all-zero report.
func (s *Service) AnalyzeVideo(ctx context.Context, videoID string) (*analysis.StoredResult, error) {
	video, err := s.source.Video(ctx, videoID)
	if err != nil {
		return nil, err
	}

	rawComments, err := s.source.Comments(ctx, videoID, s.maxComments)
	if err != nil {
		return nil, err
	}
	if len(rawComments) == 0 {
		return nil, domain.ErrNoComments
	}

	suspects := s.suspects(rawComments)
	s.logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"comments": len(rawComments),
		"suspects": len(suspects),
	}).Info("comment pre-screen complete")

	judgment := &classifier.BatchJudgment{}
	if len(suspects) > 0 {
		judgment, err = s.analyzer.Analyze(ctx, suspects)
		if err != nil {
			return nil, err
		}
	}

	result := s.assembler.Assemble(*video, rawComments, judgment)

	stored := &analysis.StoredResult{
		ID:        uuid.NewString(),
		Result:    *result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, stored); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"video_id":      videoID,
		"analysis_id":   stored.ID,
		"toxic_count":   result.ToxicComments,
		"overall_score": result.Summary.OverallToxicityScore,
	}).Info("analysis stored")

	return stored, nil
}

// GetResult loads a stored report by id.
func (s *Service) GetResult(ctx context.Context, id string) (*analysis.StoredResult, error) {
	return s.repo.Get(ctx, id)
}

// suspects keeps the comments that need contextual analysis. A comment
// is skipped only when the rule stage saw nothing at all: an estimate
// below the likely-toxic threshold and zero matched categories. The
// skipped comments default to safe at assembly.
func (s *Service) suspects(comments []analysis.Comment) []analysis.Comment {
	var suspects []analysis.Comment
	for _, c := range comments {
		verdict := s.scorer.Score(c.Text)
		if verdict.IsLikelyToxic || len(verdict.Categories) > 0 {
			suspects = append(suspects, c)
		}
	}
	return suspects
}
