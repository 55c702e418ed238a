package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/classifier"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Client judges comment batches with the Gemini API. It implements the
// pipeline's contextual classifier.
type Client struct {
	genaiClient *genai.Client
	logger      *logrus.Logger
	model       string
}

func NewClient(ctx context.Context, apiKey, model string, logger *logrus.Logger) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		genaiClient: genaiClient,
		logger:      logger,
		model:       model,
	}, nil
}

// Classify sends one batch of comments and parses the structured JSON
// verdict. Quota errors and a missing model map to their sentinel
// kinds so the caller can react per kind; an unparsable body is a
// malformed response.
func (c *Client) Classify(ctx context.Context, comments []analysis.Comment) (*classifier.BatchJudgment, error) {
	var temperature float32 = 0.3
	result, err := c.genaiClient.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(buildPrompt(comments)),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction()}},
				Role:  "system",
			},
			ResponseMIMEType: "application/json",
			Temperature:      &temperature,
		},
	)
	if err != nil {
		return nil, c.mapError(err)
	}

	responseText := result.Text()
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	if responseText == "" {
		return nil, &domain.MalformedResponseError{Err: fmt.Errorf("empty completion")}
	}

	var judgment classifier.BatchJudgment
	if err := json.Unmarshal([]byte(responseText), &judgment); err != nil {
		c.logger.WithError(err).Warn("gemini returned unparsable judgment")
		return nil, &domain.MalformedResponseError{Err: err}
	}

	return &judgment, nil
}

// mapError classifies transport errors into the pipeline's error
// kinds. The genai SDK surfaces HTTP failures as apierror strings, so
// matching is by status marker.
func (c *Client) mapError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", domain.ErrRateLimitExceeded, err)
	case strings.Contains(msg, "404") ||
		strings.Contains(msg, "not_found") ||
		strings.Contains(msg, "is not found"):
		return fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	default:
		return fmt.Errorf("failed to generate content: %w", err)
	}
}
