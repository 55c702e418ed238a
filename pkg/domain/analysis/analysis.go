package analysis

import (
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
)

// Comment is a raw comment as supplied by the comment source. The core
// never fetches comments itself.
type Comment struct {
	CommentID   string `json:"commentId"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	PublishedAt string `json:"publishedAt"`
	LikeCount   int    `json:"likeCount"`
}

// CommentAnalysis is the final authoritative record for one comment.
type CommentAnalysis struct {
	CommentID     string              `json:"commentId"`
	Author        string              `json:"author"`
	Text          string              `json:"text"`
	PublishedAt   string              `json:"publishedAt"`
	LikeCount     int                 `json:"likeCount"`
	ToxicityScore int                 `json:"toxicityScore"`
	ToxicityLevel toxicity.Level      `json:"toxicityLevel"`
	Categories    []toxicity.Category `json:"categories"`
	Explanation   string              `json:"explanation"`
	Suggestion    string              `json:"suggestion,omitempty"`
}

// CategoryCount is one entry of the aggregate category breakdown. Only
// categories inside the fixed taxonomy ever appear here.
type CategoryCount struct {
	Category toxicity.Category `json:"category"`
	Count    int               `json:"count"`
}

// Summary aggregates level buckets, category counts and the narrative
// insight over one analysis.
type Summary struct {
	OverallToxicityScore int             `json:"overallToxicityScore"`
	ToxicityLevel        toxicity.Level  `json:"toxicityLevel"`
	SafeCount            int             `json:"safeCount"`
	MildCount            int             `json:"mildCount"`
	ModerateCount        int             `json:"moderateCount"`
	SevereCount          int             `json:"severeCount"`
	CriticalCount        int             `json:"criticalCount"`
	CategoryBreakdown    []CategoryCount `json:"categoryBreakdown"`
	Insight              string          `json:"insight"`
}

// Result is the aggregate report over all analyzed comments of a video.
// Consumers must treat every numeric field as already rounded and
// bucketed.
type Result struct {
	VideoID           string            `json:"videoId"`
	VideoTitle        string            `json:"videoTitle"`
	ChannelTitle      string            `json:"channelTitle"`
	TotalComments     int               `json:"totalComments"`
	AnalyzedComments  int               `json:"analyzedComments"`
	ToxicComments     int               `json:"toxicComments"`
	ToxicPercentage   float64           `json:"toxicPercentage"`
	CleanComments     int               `json:"cleanComments"`
	CleanPercentage   float64           `json:"cleanPercentage"`
	Summary           Summary           `json:"summary"`
	Comments          []CommentAnalysis `json:"comments"`
	MaliciousComments []CommentAnalysis `json:"maliciousComments"`
}

// StoredResult wraps a persisted result with its id and creation time.
type StoredResult struct {
	ID        string    `json:"id"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}
