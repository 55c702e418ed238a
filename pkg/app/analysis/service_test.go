package analysis_test

import (
	"context"
	"errors"
	"io"
	"testing"

	app "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/app/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/classifier"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/prescreen"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/rules"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentSource struct {
	mock.Mock
}

func (m *mockCommentSource) Video(ctx context.Context, videoID string) (*app.Video, error) {
	args := m.Called(ctx, videoID)
	if v := args.Get(0); v != nil {
		return v.(*app.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentSource) Comments(ctx context.Context, videoID string, max int) ([]analysis.Comment, error) {
	args := m.Called(ctx, videoID, max)
	if v := args.Get(0); v != nil {
		return v.([]analysis.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Save(ctx context.Context, stored *analysis.StoredResult) error {
	args := m.Called(ctx, stored)
	return args.Error(0)
}

func (m *mockRepository) Get(ctx context.Context, id string) (*analysis.StoredResult, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*analysis.StoredResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingClassifier judges every comment toxic with a fixed score
// and remembers what it was asked to classify.
type recordingClassifier struct {
	calls [][]analysis.Comment
	score int
	err   error
}

func (r *recordingClassifier) Classify(_ context.Context, comments []analysis.Comment) (*classifier.BatchJudgment, error) {
	r.calls = append(r.calls, comments)
	if r.err != nil {
		return nil, r.err
	}
	out := &classifier.BatchJudgment{
		Summary: classifier.Summary{
			OverallToxicityScore: r.score,
			ToxicityLevel:        toxicity.LevelFromScore(r.score),
			Insight:              "insight",
		},
	}
	for _, c := range comments {
		out.Comments = append(out.Comments, classifier.CommentJudgment{
			CommentID:     c.CommentID,
			ToxicityScore: r.score,
			Categories:    []string{"PROFANITY"},
		})
	}
	return out, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T, source *mockCommentSource, repo *mockRepository, cl classifier.Classifier) *app.Service {
	t.Helper()
	engine, err := rules.NewDefaultEngine()
	require.NoError(t, err)
	scorer := prescreen.NewScorer(engine, toxicity.DefaultGraph(), 0)
	analyzer := classifier.NewBatchAnalyzer(cl, 0, quietLogger())
	return app.NewService(source, scorer, analyzer, app.NewAssembler(0), repo, quietLogger(), 100)
}

func TestService_AnalyzeVideo_StoresResult(t *testing.T) {
	source := new(mockCommentSource)
	repo := new(mockRepository)
	cl := &recordingClassifier{score: 70}

	comments := []analysis.Comment{
		{CommentID: "c1", Author: "a", Text: "시발 진짜 못생겼다"},
		{CommentID: "c2", Author: "b", Text: "오늘 영상 잘 봤어요"},
	}
	source.On("Video", mock.Anything, "vid-1").Return(&app.Video{VideoID: "vid-1", Title: "t", ChannelTitle: "ch"}, nil)
	source.On("Comments", mock.Anything, "vid-1", 100).Return(comments, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*analysis.StoredResult")).Return(nil)

	svc := newTestService(t, source, repo, cl)

	stored, err := svc.AnalyzeVideo(context.Background(), "vid-1")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, "vid-1", stored.Result.VideoID)
	assert.Equal(t, 2, stored.Result.TotalComments)

	// Only the profane comment passed the pre-screen.
	require.Len(t, cl.calls, 1)
	require.Len(t, cl.calls[0], 1)
	assert.Equal(t, "c1", cl.calls[0][0].CommentID)

	// The clean comment is still present in the report, defaulted safe.
	require.Len(t, stored.Result.Comments, 2)
	assert.Equal(t, toxicity.LevelSafe, stored.Result.Comments[1].ToxicityLevel)
	assert.Equal(t, 1, stored.Result.ToxicComments)

	repo.AssertExpectations(t)
	source.AssertExpectations(t)
}

func TestService_AnalyzeVideo_NoComments(t *testing.T) {
	source := new(mockCommentSource)
	repo := new(mockRepository)
	cl := &recordingClassifier{score: 50}

	source.On("Video", mock.Anything, "vid-1").Return(&app.Video{VideoID: "vid-1"}, nil)
	source.On("Comments", mock.Anything, "vid-1", 100).Return([]analysis.Comment{}, nil)

	svc := newTestService(t, source, repo, cl)

	stored, err := svc.AnalyzeVideo(context.Background(), "vid-1")
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, domain.ErrNoComments)
	assert.Empty(t, cl.calls)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_AnalyzeVideo_AllCleanSkipsClassifier(t *testing.T) {
	source := new(mockCommentSource)
	repo := new(mockRepository)
	cl := &recordingClassifier{score: 50}

	comments := []analysis.Comment{
		{CommentID: "c1", Text: "오늘 영상 잘 봤어요"},
		{CommentID: "c2", Text: "다음 편도 기대할게요"},
	}
	source.On("Video", mock.Anything, "vid-1").Return(&app.Video{VideoID: "vid-1"}, nil)
	source.On("Comments", mock.Anything, "vid-1", 100).Return(comments, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*analysis.StoredResult")).Return(nil)

	svc := newTestService(t, source, repo, cl)

	stored, err := svc.AnalyzeVideo(context.Background(), "vid-1")
	require.NoError(t, err)

	assert.Empty(t, cl.calls)
	assert.Equal(t, 0, stored.Result.ToxicComments)
	assert.Equal(t, 2, stored.Result.Summary.SafeCount)
	assert.NotEmpty(t, stored.Result.Summary.Insight)
}

func TestService_AnalyzeVideo_ClassifierErrorPropagates(t *testing.T) {
	source := new(mockCommentSource)
	repo := new(mockRepository)
	cl := &recordingClassifier{err: domain.ErrRateLimitExceeded}

	comments := []analysis.Comment{{CommentID: "c1", Text: "시발"}}
	source.On("Video", mock.Anything, "vid-1").Return(&app.Video{VideoID: "vid-1"}, nil)
	source.On("Comments", mock.Anything, "vid-1", 100).Return(comments, nil)

	svc := newTestService(t, source, repo, cl)

	_, err := svc.AnalyzeVideo(context.Background(), "vid-1")
	assert.ErrorIs(t, err, domain.ErrRateLimitExceeded)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_AnalyzeVideo_SourceErrorPropagates(t *testing.T) {
	source := new(mockCommentSource)
	repo := new(mockRepository)
	cl := &recordingClassifier{score: 50}

	wantErr := errors.New("quota exceeded")
	source.On("Video", mock.Anything, "vid-1").Return(nil, wantErr)

	svc := newTestService(t, source, repo, cl)

	_, err := svc.AnalyzeVideo(context.Background(), "vid-1")
	assert.ErrorIs(t, err, wantErr)
}

func TestService_GetResult(t *testing.T) {
	source := new(mockCommentSource)
	repo := new(mockRepository)

	stored := &analysis.StoredResult{ID: "id-1"}
	repo.On("Get", mock.Anything, "id-1").Return(stored, nil)
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.NewNotFoundError("analysis", "missing"))

	svc := newTestService(t, source, repo, &recordingClassifier{score: 10})

	got, err := svc.GetResult(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.GetResult(context.Background(), "missing")
	assert.True(t, domain.IsNotFoundError(err))
}
