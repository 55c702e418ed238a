package toxicity

// Domain is the coarse grouping a toxicity category belongs to.
type Domain string

const (
	VerbalAbuse       Domain = "VERBAL_ABUSE"
	PersonalTargeting Domain = "PERSONAL_TARGETING"
	GroupTargeting    Domain = "GROUP_TARGETING"
	Behavioral        Domain = "BEHAVIORAL"
	ContentAbuse      Domain = "CONTENT_ABUSE"
)

// Category is one of the ten fixed toxicity categories.
type Category string

const (
	Profanity      Category = "PROFANITY"
	Blame          Category = "BLAME"
	Mockery        Category = "MOCKERY"
	PersonalAttack Category = "PERSONAL_ATTACK"
	HateSpeech     Category = "HATE_SPEECH"
	Threat         Category = "THREAT"
	Sexual         Category = "SEXUAL"
	Discrimination Category = "DISCRIMINATION"
	FanWar         Category = "FAN_WAR"
	Spam           Category = "SPAM"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	Profanity,
	Blame,
	Mockery,
	PersonalAttack,
	HateSpeech,
	Threat,
	Sexual,
	Discrimination,
	FanWar,
	Spam,
}

var validCategories = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// IsValidCategory reports whether label is a member of the fixed
// category set. The contextual classifier is untrusted input and may
// return labels outside the taxonomy (e.g. "CLEAN").
func IsValidCategory(label string) bool {
	_, ok := validCategories[Category(label)]
	return ok
}

// SubType is a fine-grained classification under a category. SubTypes
// are informational and never scored independently.
type SubType string

const (
	DirectSwear   SubType = "DIRECT_SWEAR"
	ChosungSwear  SubType = "CHOSUNG_SWEAR"
	MorphedSwear  SubType = "MORPHED_SWEAR"
	SlangSwear    SubType = "SLANG_SWEAR"
	BaselessCrit  SubType = "BASELESS_CRITICISM"
	Defamation    SubType = "DEFAMATION"
	ContentBash   SubType = "CONTENT_BASHING"
	Sarcasm       SubType = "SARCASM"
	Ridicule      SubType = "RIDICULE"
	CynicalEmoji  SubType = "CYNICAL_EMOJI"
	ConsumerAtk   SubType = "CONSUMER_ATTACK"
	AppearanceAtk SubType = "APPEARANCE_ATTACK"
	AbilityAtk    SubType = "ABILITY_ATTACK"
	CharacterAtk  SubType = "CHARACTER_ATTACK"
	PrivacyInvade SubType = "PRIVACY_INVASION"
	Belittling    SubType = "BELITTLING"
	GenderHate    SubType = "GENDER_HATE"
	RacialHate    SubType = "RACIAL_HATE"
	SexualityHate SubType = "SEXUALITY_HATE"
	ReligionHate  SubType = "RELIGION_HATE"
	PoliticalSlur SubType = "POLITICAL_SLUR"
	ViolenceThr   SubType = "VIOLENCE_THREAT"
	DoxxingThr    SubType = "DOXXING_THREAT"
	SelfHarm      SubType = "SELF_HARM_INCITE"
	SexObjectify  SubType = "SEXUAL_OBJECTIFY"
	SexHarass     SubType = "SEXUAL_HARASS"
	RegionDiscrim SubType = "REGION_DISCRIM"
	AgeDiscrim    SubType = "AGE_DISCRIM"
	EduDiscrim    SubType = "EDUCATION_DISCRIM"
	LookDiscrim   SubType = "APPEARANCE_DISCRIM"
	GenerationHat SubType = "GENERATION_HATE"
	FandomVs      SubType = "FANDOM_VS_FANDOM"
	OrganizedAnti SubType = "ORGANIZED_ANTI"
	ComparisonAtk SubType = "COMPARISON_ATTACK"
	DefectionInc  SubType = "DEFECTION_INCITE"
	AdSpam        SubType = "AD_SPAM"
	RepeatSpam    SubType = "REPETITIVE_SPAM"
	Clickbait     SubType = "CLICKBAIT"
)

// Level is one of the five ordered toxicity severity buckets.
type Level string

const (
	LevelSafe     Level = "safe"
	LevelMild     Level = "mild"
	LevelModerate Level = "moderate"
	LevelSevere   Level = "severe"
	LevelCritical Level = "critical"
)

// Levels lists the buckets in ascending severity.
var Levels = []Level{LevelSafe, LevelMild, LevelModerate, LevelSevere, LevelCritical}

// LevelFromScore buckets a 0-100 score into a level. The boundaries are
// half-open except the final one, so every score lands in exactly one
// bucket. This is the single threshold function used for both
// per-comment and aggregate bucketing.
func LevelFromScore(score int) Level {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 60:
		return LevelSevere
	case score >= 40:
		return LevelModerate
	case score >= 20:
		return LevelMild
	default:
		return LevelSafe
	}
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
