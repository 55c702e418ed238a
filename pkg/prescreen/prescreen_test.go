package prescreen_test

import (
	"testing"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/toxicity"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/prescreen"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T) *prescreen.Scorer {
	t.Helper()
	engine, err := rules.NewDefaultEngine()
	require.NoError(t, err)
	return prescreen.NewScorer(engine, toxicity.DefaultGraph(), prescreen.DefaultToxicThreshold)
}

func TestScorer_Score_NoMatches(t *testing.T) {
	scorer := newScorer(t)

	verdict := scorer.Score("오늘 영상 정말 유익했어요")

	assert.Equal(t, 0, verdict.EstimatedScore)
	assert.Empty(t, verdict.Categories)
	assert.False(t, verdict.IsLikelyToxic)
}

func TestScorer_Score_ProfanityWithPersonalAttack(t *testing.T) {
	scorer := newScorer(t)

	// PROFANITY (direct swear, 50) plus PERSONAL_ATTACK (appearance,
	// 50); PROFANITY->PERSONAL_ATTACK is an AMPLIFIES edge (+15), which
	// beats the flat two-category bonus (+5).
	verdict := scorer.Score("시발 진짜 못생겼다")

	assert.Equal(t, 65, verdict.EstimatedScore)
	assert.ElementsMatch(t,
		[]toxicity.Category{toxicity.Profanity, toxicity.PersonalAttack},
		verdict.Categories,
	)
	assert.True(t, verdict.IsLikelyToxic)
}

func TestScorer_Score_SpamOnlyBelowThreshold(t *testing.T) {
	scorer := newScorer(t)

	// Single category, no relation bonus: estimated 20 stays under the
	// likely-toxic threshold of 30.
	verdict := scorer.Score("구독해주세요 링크 확인")

	assert.Equal(t, 20, verdict.EstimatedScore)
	assert.Equal(t, []toxicity.Category{toxicity.Spam}, verdict.Categories)
	assert.False(t, verdict.IsLikelyToxic)
}

func TestScorer_Score_RelationMonotonicity(t *testing.T) {
	scorer := newScorer(t)

	single := scorer.Score("시발")
	combined := scorer.Score("시발 진짜 못생겼다")

	// Adding a category with a positive-modifier relation never lowers
	// the estimate.
	assert.GreaterOrEqual(t, combined.EstimatedScore, single.EstimatedScore)
}

func TestScorer_Score_MaxNotSum(t *testing.T) {
	scorer := newScorer(t)

	// Three profanity rules can fire on one comment; the base is the
	// strongest modifier, not their sum.
	verdict := scorer.Score("ㅅㅂ 시1발 시발")

	assert.Equal(t, []toxicity.Category{toxicity.Profanity}, verdict.Categories)
	assert.Equal(t, 50, verdict.EstimatedScore)
}

func TestScorer_Score_ClampedAt100(t *testing.T) {
	engine, err := rules.NewEngine([]rules.RuleSpec{
		{ID: "A", Category: "PROFANITY", Patterns: []string{`욕설`}, ScoreModifier: 95, Confidence: rules.ConfidenceHigh},
		{ID: "B", Category: "THREAT", Patterns: []string{`위협`}, ScoreModifier: 90, Confidence: rules.ConfidenceHigh},
	})
	require.NoError(t, err)
	scorer := prescreen.NewScorer(engine, toxicity.DefaultGraph(), 0)

	// 95 base + 20 relation bonus clamps to 100.
	verdict := scorer.Score("욕설 위협")
	assert.Equal(t, 100, verdict.EstimatedScore)
}

func TestScorer_Score_CategoryCountBonusCap(t *testing.T) {
	engine, err := rules.NewEngine([]rules.RuleSpec{
		{ID: "A", Category: "SEXUAL", Patterns: []string{`aaa`}, ScoreModifier: 10, Confidence: rules.ConfidenceLow},
		{ID: "B", Category: "SPAM", Patterns: []string{`bbb`}, ScoreModifier: 10, Confidence: rules.ConfidenceLow},
	})
	require.NoError(t, err)
	scorer := prescreen.NewScorer(engine, toxicity.DefaultGraph(), 0)

	// SEXUAL and SPAM share no relation edge, so the flat bonus floor
	// applies: (2-1)*5 = 5.
	verdict := scorer.Score("aaa bbb")
	assert.Equal(t, 15, verdict.EstimatedScore)
}

func TestScorer_Score_RangeInvariant(t *testing.T) {
	scorer := newScorer(t)

	texts := []string{
		"", "시발", "구독 링크", "죽어 뒤져 찾아간다 패버린다",
		"한남 김치녀 빨갱이 틀딱 촌놈 호구 관종 시발 ㅅㅂ",
		"completely clean english text",
	}
	for _, text := range texts {
		verdict := scorer.Score(text)
		assert.GreaterOrEqual(t, verdict.EstimatedScore, 0, "text %q", text)
		assert.LessOrEqual(t, verdict.EstimatedScore, 100, "text %q", text)
	}
}
