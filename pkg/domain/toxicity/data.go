package toxicity

// Relation edge list for the Korean internet / K-POP comment taxonomy.
// Indicator lexicons and modifiers come from analysis of 16,000+ real
// comments.
var defaultRelations = []CategoryRelation{
	{From: Profanity, To: PersonalAttack, Type: Amplifies, SeverityModifier: 15,
		Description: "profanity combined with a personal attack signals deliberate malice"},
	{From: Profanity, To: Threat, Type: Amplifies, SeverityModifier: 20,
		Description: "profanity alongside a threat reads as intent to act"},
	{From: Mockery, To: PersonalAttack, Type: Amplifies, SeverityModifier: 10,
		Description: "mockery plus a personal attack aims to humiliate"},
	{From: HateSpeech, To: Discrimination, Type: Amplifies, SeverityModifier: 15,
		Description: "hate speech plus discrimination shows intentional group targeting"},

	{From: Mockery, To: Blame, Type: CoOccurs, SeverityModifier: 5,
		Description: "mockery and blame frequently appear together"},
	{From: PersonalAttack, To: HateSpeech, Type: CoOccurs, SeverityModifier: 10,
		Description: "personal attacks coupled with group hatred"},
	{From: FanWar, To: Mockery, Type: CoOccurs, SeverityModifier: 5,
		Description: "fandom conflicts carry mockery"},
	{From: FanWar, To: PersonalAttack, Type: CoOccurs, SeverityModifier: 10,
		Description: "fan wars extend into attacks on the idol"},

	{From: Mockery, To: PersonalAttack, Type: EscalatesTo, SeverityModifier: 10,
		Description: "repeated mockery develops into direct personal attacks"},
	{From: Blame, To: Threat, Type: EscalatesTo, SeverityModifier: 15,
		Description: "heated blame escalates into threats"},
	{From: Discrimination, To: HateSpeech, Type: EscalatesTo, SeverityModifier: 10,
		Description: "discriminatory remarks escalate into overt hatred"},
	{From: FanWar, To: Threat, Type: EscalatesTo, SeverityModifier: 20,
		Description: "fandom conflict escalates into doxxing and threats"},
}

var defaultOntology = []OntologyNode{
	{
		Category: Profanity,
		Domain:   VerbalAbuse,
		SubTypes: []SubType{DirectSwear, ChosungSwear, MorphedSwear, SlangSwear},
		Severity: SeverityRange{Min: 20, Max: 70},
		Indicators: []string{
			"ㅅㅂ", "ㅆㅂ", "ㅈㄹ", "ㄱㅅㄲ", "ㅂㅅ", "ㄲㅈ", "ㅁㅊ",
			"시1발", "씨빠", "지1랄", "ㅂr보", "s발",
			"ㄹㅇ ㅂㅅ", "ㅈ같은",
		},
		Examples: []Example{
			{Ko: "ㅅㅂ 이게 뭐야", En: "WTF is this (chosung abbreviation)"},
			{Ko: "진짜 ㅈ같네", En: "This is really f***ed up (slang swear)"},
		},
	},
	{
		Category: Blame,
		Domain:   PersonalTargeting,
		SubTypes: []SubType{BaselessCrit, Defamation, ContentBash},
		Severity: SeverityRange{Min: 20, Max: 65},
		Indicators: []string{
			"~해서 망한 거야", "그러니까 ~하지", "역시 ~다운", "당연하지 뭐",
			"이래서 안 되는 거야", "구독자가 그것밖에",
		},
		Examples: []Example{
			{Ko: "이래서 망한 거지", En: "That's why you failed"},
			{Ko: "구독자가 그것밖에 안 되는 이유가 있네", En: "There is a reason your subscriber count is so low"},
		},
	},
	{
		Category: Mockery,
		Domain:   PersonalTargeting,
		SubTypes: []SubType{Sarcasm, Ridicule, CynicalEmoji, ConsumerAtk},
		Severity: SeverityRange{Min: 20, Max: 65},
		Indicators: []string{
			"와 진짜 잘하신다~", "대단하시네 ㅋㅋ",
			"실화???", "🤡", "🤮", "이걸 왜 올림??",
			"호구", "흑우", "봉이네",
		},
		Examples: []Example{
			{Ko: "와 진짜 잘하신다~ ㅋㅋㅋ", En: "Wow you are so talented~ lol (sarcastic)"},
			{Ko: "이게 실력이라고? ㅋㅋㅋㅋㅋ", En: "You call this skill? lololol (mocking)"},
			{Ko: "이 가격에 사는 사람은 호구지", En: "Anyone buying at this price is a sucker"},
		},
	},
	{
		Category: PersonalAttack,
		Domain:   PersonalTargeting,
		SubTypes: []SubType{AppearanceAtk, AbilityAtk, CharacterAtk, PrivacyInvade, Belittling},
		Severity: SeverityRange{Min: 40, Max: 90},
		Indicators: []string{
			"못생겼다", "관종", "찐따", "~꼴", "~대가리",
			"재능 없다", "인성 쓰레기", "~꼴통",
			"한심", "멍청", "바보", "무식", "노답", "저능",
		},
		Examples: []Example{
			{Ko: "성형 좀 해라 못생긴게", En: "Get plastic surgery, you ugly person"},
			{Ko: "관종이네 ㄹㅇ", En: "Such an attention seeker for real"},
			{Ko: "진짜 한심하다", En: "So pathetic (belittling)"},
		},
	},
	{
		Category: HateSpeech,
		Domain:   GroupTargeting,
		SubTypes: []SubType{GenderHate, RacialHate, SexualityHate, ReligionHate, PoliticalSlur},
		Severity: SeverityRange{Min: 40, Max: 95},
		Indicators: []string{
			"~충", "~놈들", "~년들", "한남", "한녀", "김치녀", "된장녀",
			"빨갱이", "수꼴", "꼴통", "좌좀", "우좀",
		},
		Examples: []Example{
			{Ko: "이래서 ~충이라고 하는 거야", En: "This is why [group] are called [slur]"},
			{Ko: "빨갱이들이 나라를 망친다", En: "The commies are ruining the country (political slur)"},
		},
	},
	{
		Category: Threat,
		Domain:   Behavioral,
		SubTypes: []SubType{ViolenceThr, DoxxingThr, SelfHarm},
		Severity: SeverityRange{Min: 50, Max: 100},
		Indicators: []string{
			"죽어", "뒤질", "찾아간다", "패버린다",
			"신상 턴다", "자살해",
		},
		Examples: []Example{
			{Ko: "찾아가서 패버린다", En: "I will find you and beat you up"},
			{Ko: "신상 까발려야겠다", En: "I should doxx your personal info"},
		},
	},
	{
		Category:   Sexual,
		Domain:     Behavioral,
		SubTypes:   []SubType{SexObjectify, SexHarass},
		Severity:   SeverityRange{Min: 35, Max: 90},
		Indicators: []string{},
		Examples: []Example{
			{Ko: "(성적 대상화 표현)", En: "(sexual objectification expression)"},
		},
	},
	{
		Category: Discrimination,
		Domain:   GroupTargeting,
		SubTypes: []SubType{RegionDiscrim, AgeDiscrim, EduDiscrim, LookDiscrim, GenerationHat},
		Severity: SeverityRange{Min: 25, Max: 75},
		Indicators: []string{
			"촌놈", "늙은이", "~학교 나온 게 티난다", "전라도", "경상도",
			"꼰대", "틀딱", "잼민이", "급식충",
		},
		Examples: []Example{
			{Ko: "촌놈이 뭘 알아", En: "What would a country bumpkin know"},
			{Ko: "나이가 몇인데 아직도", En: "How old are you and you're still..."},
			{Ko: "틀딱들은 답이 없다", En: "Boomers are hopeless (generational hate)"},
		},
	},
	{
		Category: FanWar,
		Domain:   GroupTargeting,
		SubTypes: []SubType{FandomVs, OrganizedAnti, ComparisonAtk, DefectionInc},
		Severity: SeverityRange{Min: 20, Max: 75},
		Indicators: []string{
			"~팬들은 다 이래", "우리 애들이 훨씬", "조작", "빠순이", "사생팬",
			"이런 애를 왜 좋아함", "탈덕",
		},
		Examples: []Example{
			{Ko: "XX팬들은 다 이래서 ㅋㅋ", En: "XX fans are always like this lol"},
			{Ko: "이런 애를 왜 좋아하는지 이해불가", En: "Can't understand why anyone likes this person"},
		},
	},
	{
		Category: Spam,
		Domain:   ContentAbuse,
		SubTypes: []SubType{AdSpam, RepeatSpam, Clickbait},
		Severity: SeverityRange{Min: 10, Max: 40},
		Indicators: []string{
			"구독", "링크", "클릭", "홍보", "이벤트",
		},
		Examples: []Example{
			{Ko: "제 채널도 구독해주세요~", En: "Please subscribe to my channel too~"},
		},
	},
}
