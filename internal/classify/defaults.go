package classify

// DefaultKeywordRules ship with the binary. Weights above the default
// short-circuit threshold (0.85) are reserved for phrases that are
// unambiguous on their own.
var DefaultKeywordRules = []KeywordRule{
	// Jailbreak / prompt injection
	{Category: Jailbreak, Phrase: "ignore all previous instructions", Weight: 0.95},
	{Category: Jailbreak, Phrase: "ignore previous instructions", Weight: 0.9},
	{Category: Jailbreak, Phrase: "ignore your instructions", Weight: 0.9},
	{Category: Jailbreak, Phrase: "disregard your guidelines", Weight: 0.9},
	{Category: Jailbreak, Phrase: "you are now dan", Weight: 0.95},
	{Category: Jailbreak, Phrase: "do anything now", Weight: 0.85},
	{Category: Jailbreak, Phrase: "developer mode enabled", Weight: 0.9},
	{Category: Jailbreak, Phrase: "pretend you have no restrictions", Weight: 0.9},
	{Category: Jailbreak, Phrase: "without any restrictions", Weight: 0.6},
	{Category: Jailbreak, Phrase: "jailbreak", Weight: 0.7},
	{Category: Jailbreak, Pattern: `\b(ignore|disregard|forget)\s+(all\s+)?(of\s+)?(the\s+|your\s+)?(previous|prior|above|earlier)\s+(instructions?|rules?|prompts?)`, Weight: 0.95},
	{Category: Jailbreak, Pattern: `<\|im_start\|>\s*system|\[INST\]|BEGIN\s+HIDDEN\s+INSTRUCTIONS?`, Weight: 0.9},
	{Category: Jailbreak, Pattern: `\b(reveal|show|print|repeat)\s+(me\s+)?(your|the)\s+system\s+prompt`, Weight: 0.75},

	// Violence
	{Category: Violence, Phrase: "how to make a bomb", Weight: 0.95},
	{Category: Violence, Phrase: "how to build a bomb", Weight: 0.95},
	{Category: Violence, Phrase: "make explosives", Weight: 0.9},
	{Category: Violence, Phrase: "pipe bomb", Weight: 0.9},
	{Category: Violence, Phrase: "school shooting", Weight: 0.8},
	{Category: Violence, Phrase: "how to kill someone", Weight: 0.95},
	{Category: Violence, Phrase: "hurt someone badly", Weight: 0.8},
	{Category: Violence, Pattern: `\bhow\s+(do\s+i|to|can\s+i)\s+(poison|stab|strangle)\b`, Weight: 0.9},

	// Self-harm
	{Category: SelfHarm, Phrase: "kill myself", Weight: 0.95},
	{Category: SelfHarm, Phrase: "end my life", Weight: 0.95},
	{Category: SelfHarm, Phrase: "how to commit suicide", Weight: 0.95},
	{Category: SelfHarm, Phrase: "suicide methods", Weight: 0.95},
	{Category: SelfHarm, Phrase: "cut myself", Weight: 0.9},
	{Category: SelfHarm, Phrase: "self harm", Weight: 0.7},
	{Category: SelfHarm, Phrase: "want to die", Weight: 0.75},
	{Category: SelfHarm, Pattern: `\b(painless|easiest)\s+way\s+to\s+die\b`, Weight: 0.95},

	// Adult
	{Category: Adult, Phrase: "porn", Weight: 0.85},
	{Category: Adult, Phrase: "pornography", Weight: 0.85},
	{Category: Adult, Phrase: "nsfw", Weight: 0.7},
	{Category: Adult, Phrase: "nude photos", Weight: 0.85},
	{Category: Adult, Phrase: "sexual roleplay", Weight: 0.9},
	{Category: Adult, Phrase: "explicit sex", Weight: 0.9},
	{Category: Adult, Pattern: `\bwrite\s+(an?\s+)?(erotic|explicit|sexual)\s+(story|scene|fanfic)`, Weight: 0.9},

	// Hate
	{Category: Hate, Phrase: "ethnic cleansing", Weight: 0.8},
	{Category: Hate, Phrase: "write hate speech", Weight: 0.9},
	{Category: Hate, Phrase: "racial slurs", Weight: 0.8},
	{Category: Hate, Phrase: "inferior race", Weight: 0.85},
	{Category: Hate, Pattern: `\bwhy\s+are\s+\w+\s+(people\s+)?(inferior|subhuman)\b`, Weight: 0.85},

	// Illegal
	{Category: Illegal, Phrase: "how to make meth", Weight: 0.95},
	{Category: Illegal, Phrase: "cook meth", Weight: 0.9},
	{Category: Illegal, Phrase: "buy drugs online", Weight: 0.85},
	{Category: Illegal, Phrase: "counterfeit money", Weight: 0.85},
	{Category: Illegal, Phrase: "fake id", Weight: 0.7},
	{Category: Illegal, Phrase: "hack into", Weight: 0.75},
	{Category: Illegal, Phrase: "steal a car", Weight: 0.85},
	{Category: Illegal, Phrase: "stolen credit card", Weight: 0.9},
	{Category: Illegal, Pattern: `\bhow\s+(do\s+i|to|can\s+i)\s+(shoplift|hotwire|launder\s+money)\b`, Weight: 0.9},
}
