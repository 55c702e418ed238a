package analysis

import (
	"fmt"
	"math"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/classifier"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
)

// DefaultMaliciousThreshold classifies a comment as malicious. The
// single threshold is applied uniformly everywhere.
const DefaultMaliciousThreshold = 40

// Video identifies the analyzed video for the report header.
type Video struct {
	VideoID      string
	Title        string
	ChannelTitle string
}

// Assembler merges contextual judgments (authoritative) with taxonomy
// validation into the final report.
type Assembler struct {
	maliciousThreshold int
}

func NewAssembler(maliciousThreshold int) *Assembler {
	if maliciousThreshold <= 0 {
		maliciousThreshold = DefaultMaliciousThreshold
	}
	return &Assembler{maliciousThreshold: maliciousThreshold}
}

// Assemble joins every raw comment with its judgment by id. A comment
// the contextual stage omitted defaults to safe rather than being
// dropped: defaults cover documented omissions only, never failed
// calls (those never reach the assembler). Category labels are
// filtered against the fixed taxonomy, and levels are re-derived from
// scores so the bucket counts always sum to the analyzed total.
func (a *Assembler) Assemble(video Video, rawComments []analysis.Comment, judgment *classifier.BatchJudgment) *analysis.Result {
	byID := make(map[string]classifier.CommentJudgment, len(judgment.Comments))
	for _, j := range judgment.Comments {
		byID[j.CommentID] = j
	}

	comments := make([]analysis.CommentAnalysis, 0, len(rawComments))
	var malicious []analysis.CommentAnalysis
	levelCounts := make(map[toxicity.Level]int, len(toxicity.Levels))

	for _, raw := range rawComments {
		ca := analysis.CommentAnalysis{
			CommentID:     raw.CommentID,
			Author:        raw.Author,
			Text:          raw.Text,
			PublishedAt:   raw.PublishedAt,
			LikeCount:     raw.LikeCount,
			ToxicityLevel: toxicity.LevelSafe,
			Categories:    []toxicity.Category{},
			Explanation:   "",
		}
		if j, ok := byID[raw.CommentID]; ok {
			ca.ToxicityScore = toxicity.ClampScore(j.ToxicityScore)
			ca.ToxicityLevel = toxicity.LevelFromScore(ca.ToxicityScore)
			ca.Categories = filterCategories(j.Categories)
			ca.Explanation = j.Explanation
			ca.Suggestion = j.Suggestion
		}

		levelCounts[ca.ToxicityLevel]++
		if ca.ToxicityScore >= a.maliciousThreshold {
			malicious = append(malicious, ca)
		}
		comments = append(comments, ca)
	}

	total := len(comments)
	toxicCount := len(malicious)
	cleanCount := total - toxicCount

	overall := toxicity.ClampScore(judgment.Summary.OverallToxicityScore)
	breakdown := filterBreakdown(judgment.Summary.CategoryBreakdown)

	summary := analysis.Summary{
		OverallToxicityScore: overall,
		ToxicityLevel:        toxicity.LevelFromScore(overall),
		SafeCount:            levelCounts[toxicity.LevelSafe],
		MildCount:            levelCounts[toxicity.LevelMild],
		ModerateCount:        levelCounts[toxicity.LevelModerate],
		SevereCount:          levelCounts[toxicity.LevelSevere],
		CriticalCount:        levelCounts[toxicity.LevelCritical],
		CategoryBreakdown:    breakdown,
		Insight:              judgment.Summary.Insight,
	}
	if summary.Insight == "" {
		summary.Insight = templateInsight(total, toxicCount, summary)
	}

	return &analysis.Result{
		VideoID:           video.VideoID,
		VideoTitle:        video.Title,
		ChannelTitle:      video.ChannelTitle,
		TotalComments:     total,
		AnalyzedComments:  total,
		ToxicComments:     toxicCount,
		ToxicPercentage:   percentage(toxicCount, total),
		CleanComments:     cleanCount,
		CleanPercentage:   percentage(cleanCount, total),
		Summary:           summary,
		Comments:          comments,
		MaliciousComments: malicious,
	}
}

// filterCategories drops any label outside the fixed taxonomy. The
// contextual stage is untrusted and is known to emit labels like
// "CLEAN".
func filterCategories(labels []string) []toxicity.Category {
	out := make([]toxicity.Category, 0, len(labels))
	for _, label := range labels {
		if toxicity.IsValidCategory(label) {
			out = append(out, toxicity.Category(label))
		}
	}
	return out
}

func filterBreakdown(counts []classifier.CategoryCount) []analysis.CategoryCount {
	out := make([]analysis.CategoryCount, 0, len(counts))
	for _, cc := range counts {
		if toxicity.IsValidCategory(cc.Category) {
			out = append(out, analysis.CategoryCount{
				Category: toxicity.Category(cc.Category),
				Count:    cc.Count,
			})
		}
	}
	return out
}

// percentage rounds half-up to one decimal place.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Floor(float64(part)/float64(total)*1000+0.5) / 10
}

// templateInsight derives a deterministic narrative from the aggregate
// statistics when the contextual stage supplied none.
func templateInsight(total, toxicCount int, summary analysis.Summary) string {
	if total == 0 {
		return ""
	}
	if toxicCount == 0 {
		return fmt.Sprintf("분석한 댓글 %d개 중 악성 댓글이 발견되지 않았습니다.", total)
	}

	dominant := ""
	max := 0
	for _, cc := range summary.CategoryBreakdown {
		if cc.Count > max {
			max = cc.Count
			dominant = string(cc.Category)
		}
	}

	insight := fmt.Sprintf("분석한 댓글 %d개 중 %d개(%.1f%%)가 악성으로 분류되었습니다.",
		total, toxicCount, percentage(toxicCount, total))
	if dominant != "" {
		insight += fmt.Sprintf(" 가장 많이 탐지된 유형은 %s입니다.", dominant)
	}
	if severe := summary.SevereCount + summary.CriticalCount; severe > 0 {
		insight += fmt.Sprintf(" 심각 수준 이상의 댓글이 %d개 있어 조치가 필요합니다.", severe)
	}
	return insight
}
