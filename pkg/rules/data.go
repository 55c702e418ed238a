package rules

// Built-in Korean detection rule table. Patterns target chosung
// abbreviations, morphed spellings and community slang; negative
// patterns guard known false positives (idioms, place names).

var chosungSwearPatterns = []string{
	`[ㅅㅆ][ㅂ]`,
	`ㅈㄹ`,
	`ㄱㅅㄲ`,
	`[ㅂ][ㅅ]`,
	`ㅁㅊ`,
	`ㄲㅈ`,
	`ㅈㄴ`,
}

var morphedSwearPatterns = []string{
	`(?i)시[1!i]발`,
	`씨[빠바]`,
	`(?i)지[1!i]랄`,
	`(?i)ㅂ[rR]보`,
	`[sS]발`,
	`병[시씬]|병1`,
}

var directSwearPatterns = []string{
	`시발|씨발|씨팔`,
	`개새끼|개세끼|개색`,
	`병신`,
	`지랄`,
	`꺼져|닥쳐|꺼지`,
}

var sarcasmPatterns = []string{
	`와\s*진짜\s*잘.+[~ㅋ]`,
	`대단하시네\s*[ㅋㅎ]`,
	`ㅋ{10,}`,
	`실화\?{2,}`,
	`이걸?\s*왜\s*올[리림].*\?`,
}

var consumerAttackPatterns = []string{
	`호구`,
	`흑우`,
	`봉이네|봉이다`,
	`호갱`,
}

var threatPatterns = []string{
	`죽어|뒤져|뒤질`,
	`찾아간다|찾아갈`,
	`패[버]린다|패줄까`,
	`신상\s*(까|턴|공개)`,
	`자살\s*(해|하|좀)`,
}

// Idioms and meta-discussion that contain threat keywords but carry no
// threat ("죽어도 안 해", review bombing, talking about terrorism).
var threatNegativePatterns = []string{
	`죽어도\s*(안|못|싫)`,
	`별점\s*테러`,
	`리뷰\s*테러`,
	`테러\s*방지`,
	`테러리스트`,
}

var personalAttackPatterns = []string{
	`못생[겼긴김]`,
	`관종`,
	`찐따`,
	`인성\s*(쓰레기|문제|봐)`,
	`재능\s*(없|이\s*없)`,
}

var belittlingPatterns = []string{
	`한심하[다네]`,
	`멍청`,
	`바보`,
	`무식`,
	`노답`,
	`저능`,
	`무뇌`,
	`답답하[다네]`,
}

var blamePatterns = []string{
	`.+해서\s*망한`,
	`그러니까\s*.+하지`,
	`이래서\s*(안|못)\s*되는`,
	`구독자가\s*그것밖에`,
	`당연하지\s*뭐`,
}

var fanWarPatterns = []string{
	`.+팬들?은?\s*다\s*이래`,
	`빠순이`,
	`사생팬|사생`,
	`탈덕`,
	`안티`,
	`조작`,
}

var hateSpeechPatterns = []string{
	`한남|한녀`,
	`김치녀|된장녀`,
	`.+충$`,
	`페미|꼴페미`,
}

// 한남동 is a place name, 한남자/한남대 ordinary words.
var hateSpeechNegativePatterns = []string{
	`한남동`,
	`한남[자대역교오]`,
	`따뜻한남`,
}

var politicalSlurPatterns = []string{
	`빨갱이`,
	`수꼴`,
	`꼴통`,
	`좌좀|우좀`,
	`국짐`,
	`민주짱`,
	`찍소`,
}

var discriminationPatterns = []string{
	`촌놈`,
	`늙은이`,
	`.+학교\s*나온\s*게`,
	`전라도|경상도`,
}

var generationHatePatterns = []string{
	`꼰대`,
	`틀딱`,
	`잼민이`,
	`급식충`,
	`요즘\s*것들`,
	`노인네`,
}

var spamPatterns = []string{
	`(?i)https?://`,
	`구독.*해\s*주`,
	`홍보|이벤트|당첨`,
}

// DefaultRuleSpecs returns the built-in rule table. Callers that load
// a table from configuration replace this wholesale.
func DefaultRuleSpecs() []RuleSpec {
	return []RuleSpec{
		{
			ID:            "PROF_CHOSUNG",
			Category:      "PROFANITY",
			Description:   "Chosung (initial consonant) abbreviation swear words",
			Patterns:      chosungSwearPatterns,
			ScoreModifier: 35,
			Confidence:    ConfidenceHigh,
		},
		{
			ID:            "PROF_MORPHED",
			Category:      "PROFANITY",
			Description:   "Morphed/disguised swear words using number/letter substitution",
			Patterns:      morphedSwearPatterns,
			ScoreModifier: 40,
			Confidence:    ConfidenceHigh,
		},
		{
			ID:            "PROF_DIRECT",
			Category:      "PROFANITY",
			Description:   "Direct explicit swear words",
			Patterns:      directSwearPatterns,
			ScoreModifier: 50,
			Confidence:    ConfidenceHigh,
		},
		{
			ID:            "MOCK_SARCASM",
			Category:      "MOCKERY",
			Description:   "Sarcastic expressions using positive words with mocking tone markers",
			Patterns:      sarcasmPatterns,
			ScoreModifier: 30,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:            "MOCK_CONSUMER",
			Category:      "MOCKERY",
			Description:   "Consumer-targeted mockery (호구, 흑우)",
			Patterns:      consumerAttackPatterns,
			ScoreModifier: 30,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:               "THREAT_VIOLENCE",
			Category:         "THREAT",
			Description:      "Direct violence threats or harm wishes",
			Patterns:         threatPatterns,
			NegativePatterns: threatNegativePatterns,
			ScoreModifier:    65,
			Confidence:       ConfidenceHigh,
		},
		{
			ID:            "PA_DIRECT",
			Category:      "PERSONAL_ATTACK",
			Description:   "Direct personal attacks on appearance, ability, or character",
			Patterns:      personalAttackPatterns,
			ScoreModifier: 50,
			Confidence:    ConfidenceHigh,
		},
		{
			ID:            "PA_BELITTLE",
			Category:      "PERSONAL_ATTACK",
			Description:   "Belittling/dismissive language (한심, 멍청, 바보, 노답)",
			Patterns:      belittlingPatterns,
			ScoreModifier: 35,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:            "BLAME_PATTERN",
			Category:      "BLAME",
			Description:   "Baseless criticism, defamation, or content bashing",
			Patterns:      blamePatterns,
			ScoreModifier: 30,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:            "FW_PATTERN",
			Category:      "FAN_WAR",
			Description:   "Fandom conflict, anti-fan activity, or comparison attacks",
			Patterns:      fanWarPatterns,
			ScoreModifier: 35,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:               "HS_GENDER",
			Category:         "HATE_SPEECH",
			Description:      "Gender-based hate speech including Korean-specific slurs",
			Patterns:         hateSpeechPatterns,
			NegativePatterns: hateSpeechNegativePatterns,
			ScoreModifier:    55,
			Confidence:       ConfidenceHigh,
		},
		{
			ID:            "HS_POLITICAL",
			Category:      "HATE_SPEECH",
			Description:   "Political slurs and partisan hate speech",
			Patterns:      politicalSlurPatterns,
			ScoreModifier: 45,
			Confidence:    ConfidenceHigh,
		},
		{
			ID:            "DISCRIM_PATTERN",
			Category:      "DISCRIMINATION",
			Description:   "Regional, age, education, or appearance discrimination",
			Patterns:      discriminationPatterns,
			ScoreModifier: 45,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:            "DISCRIM_GENERATION",
			Category:      "DISCRIMINATION",
			Description:   "Generational hate speech (꼰대, 틀딱, 잼민이)",
			Patterns:      generationHatePatterns,
			ScoreModifier: 40,
			Confidence:    ConfidenceMedium,
		},
		{
			ID:            "SPAM_LINK",
			Category:      "SPAM",
			Description:   "Spam comments with promotional links or repetitive content",
			Patterns:      spamPatterns,
			ScoreModifier: 20,
			Confidence:    ConfidenceMedium,
		},
	}
}
