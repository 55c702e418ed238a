package youtube_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/httpx"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/httpx/mocks"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/youtube"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(httpClient httpx.Client) *youtube.Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	breaker := httpx.NewCircuitBreaker("youtube-test", time.Minute, 3)
	return youtube.NewClient(httpClient, breaker, logger, "test-key", "https://yt.example.com")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestClient_Video(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Path == "/videos" &&
			req.URL.Query().Get("id") == "dQw4w9WgXcQ" &&
			req.URL.Query().Get("key") == "test-key"
	})).Return(jsonResponse(http.StatusOK, `{
		"items": [{
			"id": "dQw4w9WgXcQ",
			"snippet": {"title": "some video", "channelTitle": "some channel"}
		}]
	}`), nil)

	client := newTestClient(mockClient)

	video, err := client.Video(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.VideoID)
	assert.Equal(t, "some video", video.Title)
	assert.Equal(t, "some channel", video.ChannelTitle)
	mockClient.AssertExpectations(t)
}

func TestClient_VideoNotFound(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{"items": []}`), nil)

	client := newTestClient(mockClient)

	_, err := client.Video(context.Background(), "missing-vid")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestClient_Comments(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Path == "/commentThreads" &&
			req.URL.Query().Get("videoId") == "dQw4w9WgXcQ" &&
			req.URL.Query().Get("order") == "relevance"
	})).Return(jsonResponse(http.StatusOK, `{
		"items": [
			{"snippet": {"topLevelComment": {"id": "c1", "snippet": {
				"authorDisplayName": "user1", "textOriginal": "첫 댓글",
				"likeCount": 3, "publishedAt": "2024-01-01T00:00:00Z"
			}}}},
			{"snippet": {"topLevelComment": {"id": "c2", "snippet": {
				"authorDisplayName": "user2", "textDisplay": "두번째",
				"likeCount": 0, "publishedAt": "2024-01-02T00:00:00Z"
			}}}}
		]
	}`), nil)

	client := newTestClient(mockClient)

	comments, err := client.Comments(context.Background(), "dQw4w9WgXcQ", 50)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].CommentID)
	assert.Equal(t, "첫 댓글", comments[0].Text)
	assert.Equal(t, 3, comments[0].LikeCount)
	// textOriginal missing falls back to textDisplay.
	assert.Equal(t, "두번째", comments[1].Text)
}

func TestClient_CommentsPagination(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	first := mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Query().Get("pageToken") == ""
	})).Return(jsonResponse(http.StatusOK, `{
		"nextPageToken": "page2",
		"items": [{"snippet": {"topLevelComment": {"id": "c1", "snippet": {"textOriginal": "a"}}}}]
	}`), nil)
	first.Once()
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Query().Get("pageToken") == "page2"
	})).Return(jsonResponse(http.StatusOK, `{
		"items": [{"snippet": {"topLevelComment": {"id": "c2", "snippet": {"textOriginal": "b"}}}}]
	}`), nil).Once()

	client := newTestClient(mockClient)

	comments, err := client.Comments(context.Background(), "dQw4w9WgXcQ", 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "c2", comments[1].CommentID)
	mockClient.AssertExpectations(t)
}

func TestClient_QuotaExceeded(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusForbidden, `{
		"error": {"code": 403, "message": "quota", "errors": [{"reason": "quotaExceeded"}]}
	}`), nil)

	client := newTestClient(mockClient)

	_, err := client.Comments(context.Background(), "dQw4w9WgXcQ", 10)
	assert.ErrorIs(t, err, youtube.ErrQuotaExceeded)
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url extra params", "https://www.youtube.com/watch?list=x&v=dQw4w9WgXcQ&t=1s", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts url", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"raw id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"garbage", "not a url at all", "", true},
		{"wrong id length", "short", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := youtube.ExtractVideoID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
