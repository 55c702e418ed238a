package gemini

import (
	"fmt"
	"strings"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
)

// systemInstruction renders the classification contract: the fixed
// category taxonomy with severity bands and indicator cues, plus the
// required response schema.
func systemInstruction() string {
	var b strings.Builder
	b.WriteString("당신은 한국어 유튜브 댓글의 악성 여부를 분석하는 전문가입니다.\n")
	b.WriteString("각 댓글을 문맥까지 고려하여 분석하고, 반드시 아래 분류 체계의 카테고리만 사용하세요.\n\n")
	b.WriteString("## 악성 댓글 분류 체계\n")

	graph := toxicity.DefaultGraph()
	for _, category := range toxicity.Categories {
		node, ok := graph.Node(category)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n### %s (심각도 %d~%d)\n", node.Category, node.Severity.Min, node.Severity.Max)
		if len(node.Indicators) > 0 {
			fmt.Fprintf(&b, "징후: %s\n", strings.Join(node.Indicators, ", "))
		}
		for _, ex := range node.Examples {
			fmt.Fprintf(&b, "예시: %q\n", ex.Ko)
		}
	}

	b.WriteString(`
## 응답 형식
반드시 아래 JSON 형식으로만 응답하세요. 다른 텍스트를 포함하지 마세요.
{
  "comments": [
    {
      "commentId": "입력에서 받은 id 그대로",
      "toxicityScore": 0,
      "toxicityLevel": "safe|mild|moderate|severe|critical",
      "categories": ["해당하는 카테고리"],
      "explanation": "판단 근거 (한국어 한 문장)",
      "suggestion": "대응 방안 (악성일 때만)"
    }
  ],
  "summary": {
    "overallToxicityScore": 0,
    "toxicityLevel": "safe",
    "categoryBreakdown": [{"category": "PROFANITY", "count": 0}],
    "insight": "전체 댓글 분위기에 대한 통찰 (한국어 2~3문장)"
  }
}

점수 기준: 0~19 safe, 20~39 mild, 40~59 moderate, 60~79 severe, 80~100 critical.
악성이 아닌 댓글은 toxicityScore를 낮게 주고 categories를 빈 배열로 두세요.`)

	return b.String()
}

// buildPrompt lists the batch's comments with their ids. The id echo
// is what lets the caller join verdicts back to raw comments.
func buildPrompt(comments []analysis.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "다음 %d개의 댓글을 분석하세요.\n\n", len(comments))
	for i, c := range comments {
		fmt.Fprintf(&b, "%d. [id: %s] (작성자: %s, 좋아요: %d)\n%s\n\n",
			i+1, c.CommentID, c.Author, c.LikeCount, c.Text)
	}
	return b.String()
}
