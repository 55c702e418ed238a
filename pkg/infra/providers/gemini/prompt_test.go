package gemini

import (
	"testing"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	"github.com/stretchr/testify/assert"
)

func TestSystemInstruction_ListsEveryCategory(t *testing.T) {
	instruction := systemInstruction()

	for _, category := range toxicity.Categories {
		assert.Contains(t, instruction, string(category))
	}
	assert.Contains(t, instruction, "commentId")
	assert.Contains(t, instruction, "overallToxicityScore")
}

func TestBuildPrompt_EchoesCommentIDs(t *testing.T) {
	comments := []analysis.Comment{
		{CommentID: "c-1", Author: "user1", Text: "첫 번째 댓글"},
		{CommentID: "c-2", Author: "user2", Text: "두 번째 댓글"},
	}

	prompt := buildPrompt(comments)

	assert.Contains(t, prompt, "[id: c-1]")
	assert.Contains(t, prompt, "[id: c-2]")
	assert.Contains(t, prompt, "첫 번째 댓글")
	assert.Contains(t, prompt, "2개의 댓글")
}
