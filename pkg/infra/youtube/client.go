package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	app "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/app/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	maxPageSize    = 100
)

var ErrQuotaExceeded = errors.New("youtube data api quota exceeded")

// Client fetches video metadata and comment threads from the YouTube
// Data API v3. It implements the pipeline's comment source.
type Client struct {
	client         httpx.Client
	circuitBreaker httpx.CircuitBreaker
	logger         *logrus.Logger
	apiKey         string
	baseURL        string
}

func NewClient(
	client httpx.Client,
	circuitBreaker httpx.CircuitBreaker,
	logger *logrus.Logger,
	apiKey string,
	baseURL string,
) *Client {
	if client == nil {
		client = &http.Client{}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:         client,
		circuitBreaker: circuitBreaker,
		logger:         logger,
		apiKey:         apiKey,
		baseURL:        baseURL,
	}
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

type commentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			TopLevelComment struct {
				ID      string `json:"id"`
				Snippet struct {
					AuthorDisplayName string `json:"authorDisplayName"`
					TextDisplay       string `json:"textDisplay"`
					TextOriginal      string `json:"textOriginal"`
					LikeCount         int    `json:"likeCount"`
					PublishedAt       string `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// Video looks up the snippet of a single video.
func (c *Client) Video(ctx context.Context, videoID string) (*app.Video, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("id", videoID)

	var parsed videoListResponse
	if err := c.get(ctx, "/videos", query, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Items) == 0 {
		return nil, domain.NewNotFoundError("video", videoID)
	}

	item := parsed.Items[0]
	return &app.Video{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}

// Comments fetches up to max top-level comments ordered by relevance,
// paging until the limit or the last page.
func (c *Client) Comments(ctx context.Context, videoID string, max int) ([]analysis.Comment, error) {
	if max <= 0 {
		max = maxPageSize
	}

	var comments []analysis.Comment
	pageToken := ""
	for len(comments) < max {
		pageSize := max - len(comments)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		query := url.Values{}
		query.Set("part", "snippet")
		query.Set("videoId", videoID)
		query.Set("order", "relevance")
		query.Set("textFormat", "plainText")
		query.Set("maxResults", strconv.Itoa(pageSize))
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var parsed commentThreadsResponse
		if err := c.get(ctx, "/commentThreads", query, &parsed); err != nil {
			return nil, err
		}

		for _, item := range parsed.Items {
			top := item.Snippet.TopLevelComment
			text := top.Snippet.TextOriginal
			if text == "" {
				text = top.Snippet.TextDisplay
			}
			comments = append(comments, analysis.Comment{
				CommentID:   top.ID,
				Author:      top.Snippet.AuthorDisplayName,
				Text:        text,
				LikeCount:   top.Snippet.LikeCount,
				PublishedAt: top.Snippet.PublishedAt,
			})
			if len(comments) == max {
				break
			}
		}

		pageToken = parsed.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return comments, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.circuitBreaker.Execute(func() error {
		return c.executeGet(ctx, path, query, out)
	})
}

func (c *Client) executeGet(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create youtube request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.WithError(err).WithField("path", path).Error("youtube data api call failed")
		}
		return fmt.Errorf("failed to call youtube data api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if isQuotaError(resp.StatusCode, apiErr) {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Error.Message)
		}
		if resp.StatusCode == http.StatusNotFound {
			return domain.NewNotFoundError("video", query.Get("videoId"))
		}
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"path":        path,
		}).Error("youtube data api returned non-200 status")
		return fmt.Errorf("youtube data api: status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode youtube response: %w", err)
	}
	return nil
}

func isQuotaError(status int, apiErr apiErrorResponse) bool {
	if status != http.StatusForbidden && status != http.StatusTooManyRequests {
		return false
	}
	for _, e := range apiErr.Error.Errors {
		switch e.Reason {
		case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded":
			return true
		}
	}
	return status == http.StatusTooManyRequests
}

var (
	watchPattern = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`)
	shortPattern = regexp.MustCompile(`(?:youtu\.be/|shorts/|embed/)([A-Za-z0-9_-]{11})`)
	rawIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video id out of a watch URL,
// youtu.be short link, shorts/embed URL, or a raw id.
func ExtractVideoID(input string) (string, error) {
	if m := watchPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if m := shortPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if rawIDPattern.MatchString(input) {
		return input, nil
	}
	return "", fmt.Errorf("not a recognizable youtube video url or id: %q", input)
}
