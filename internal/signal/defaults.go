package signal

import "subtext/internal/domain"

// Defaults returns the built-in vocabulary. The returned value is freshly
// allocated on every call; callers treat their copy as read-only and share
// it by reference.
func Defaults() *Tables {
	return &Tables{
		Frames: []FrameEntry{
			{
				Type: domain.FrameNormative,
				Keywords: []string{
					"normal", "natural", "obvious", "common sense", "everyone knows",
					"that's just how it is", "tradition", "always been", "standard",
					"the way things work", "realistic", "pragmatic", "inevitable",
					"human nature", "the real world",
				},
				Question: "What would change if this were seen as a choice rather than a fact?",
				Reveals:  "Normative frames disguise social constructions as natural law.",
				Antidote: "Ask: who decided this was 'normal,' and when?",
			},
			{
				Type: domain.FrameLinguistic,
				Keywords: []string{
					"stakeholder", "human resources", "collateral damage", "externality",
					"disruption", "optimization", "leverage", "synergy", "alignment",
					"market forces", "talent", "assets", "capital", "deliverables",
					"value proposition", "growth", "scale",
				},
				Question: "What does this language conceal about who is affected and how?",
				Reveals:  "Linguistic frames make violence abstract and people into resources.",
				Antidote: "Replace each term with plain language and notice what changes.",
			},
			{
				Type: domain.FrameInstitutional,
				Keywords: []string{
					"policy", "procedure", "compliance", "regulation", "governance",
					"protocol", "due process", "standard operating", "best practice",
					"industry standard", "accreditation", "certification", "authorized",
					"official channels", "chain of command",
				},
				Question: "Who wrote these rules, and what do they protect?",
				Reveals:  "Institutional frames make power arrangements feel like physics.",
				Antidote: "Trace each rule to its origin. Someone wrote it. Someone benefits.",
			},
			{
				Type: domain.FrameTemporal,
				Keywords: []string{
					"progress", "inevitable", "the future", "moving forward", "behind the times",
					"modernization", "next generation", "legacy", "outdated", "evolving",
					"trajectory", "momentum", "disruption cycle", "paradigm shift",
					"the arc of history", "tipping point",
				},
				Question: "Whose timeline is this, and what does it erase?",
				Reveals:  "Temporal frames make one group's trajectory feel like destiny.",
				Antidote: "Ask: inevitable for whom? Progress toward what? Decided by whom?",
			},
			{
				Type: domain.FrameEpistemic,
				Keywords: []string{
					"evidence-based", "data-driven", "peer-reviewed", "scientific consensus",
					"expert opinion", "credible sources", "methodology", "rigorous",
					"statistically significant", "empirical", "objective", "measurable",
					"anecdotal", "unsubstantiated", "misinformation",
				},
				Question: "What ways of knowing are being excluded, and why?",
				Reveals:  "Epistemic frames determine what counts as knowledge — and who counts as a knower.",
				Antidote: "Ask: what would a different discipline, culture, or tradition see here?",
			},
			{
				Type: domain.FrameEconomic,
				Keywords: []string{
					"market", "efficiency", "roi", "cost-benefit", "productivity",
					"scarcity", "supply and demand", "rational actor", "incentive",
					"gdp", "profit margin", "bottom line", "valuation", "monetize",
					"free market", "competition", "shareholder value",
				},
				Question: "What is being valued, and what is being discarded?",
				Reveals:  "Economic frames reduce all value to a single metric and hide the rest.",
				Antidote: "Name three things this framework cannot measure but that matter enormously.",
			},
			{
				Type: domain.FrameTechnological,
				Keywords: []string{
					"platform", "algorithm", "ai", "automation", "machine learning",
					"digital transformation", "smart", "cloud", "api", "ecosystem",
					"scalable", "disruptive", "innovation", "tech-enabled",
					"frictionless", "seamless", "personalized",
				},
				Question: "What human decisions are hidden inside this technology?",
				Reveals:  "Technological frames make human choices appear as neutral computation.",
				Antidote: "Find the humans. Someone designed this. Someone chose the training data. Someone profits.",
			},
			{
				Type: domain.FrameMythological,
				Keywords: []string{
					"founding fathers", "self-made", "american dream", "invisible hand",
					"meritocracy", "free world", "civilization", "manifest destiny",
					"the people", "our values", "who we are", "heritage", "legacy",
					"promised land", "chosen", "destiny", "greatness",
				},
				Question: "What does this myth authorize, and what does it forbid?",
				Reveals:  "Mythological frames sacralize power arrangements so they cannot be questioned.",
				Antidote: "Tell the same story from the perspective of those the myth excludes.",
			},
		},
		Masks: []MaskEntry{
			{
				Type: domain.MaskAuthority,
				Keywords: []string{
					"leadership", "executive", "decision-maker", "vision", "strategy",
					"mandate", "direction", "c-suite", "board", "governance",
				},
				BehindTheMask:  "Power is often held not by the visible leaders but by those who set the agenda they enact.",
				SlipIndicators: []string{"contradicts own policy", "defers upward", "cannot explain rationale", "reads from script"},
			},
			{
				Type: domain.MaskBenevolence,
				Keywords: []string{
					"for your own good", "we care", "protecting", "safety", "support",
					"help", "empower", "serve", "community", "wellbeing",
				},
				BehindTheMask:  "Care rhetoric often masks control. True care shares power; false care hoards it.",
				SlipIndicators: []string{"help requires compliance", "support has conditions", "empowerment means obedience"},
			},
			{
				Type: domain.MaskNeutrality,
				Keywords: []string{
					"objective", "balanced", "both sides", "unbiased", "fair",
					"neutral", "apolitical", "nonpartisan", "just the facts", "centrist",
				},
				BehindTheMask:  "Claimed neutrality always serves the status quo. The center is not neutral — it is the current arrangement of power.",
				SlipIndicators: []string{"frames challengers as extreme", "treats current system as baseline", "equates critique with bias"},
			},
			{
				Type: domain.MaskMeritocracy,
				Keywords: []string{
					"earned", "deserved", "talent", "hard work", "achievement",
					"performance", "best and brightest", "top tier", "elite", "competitive",
				},
				BehindTheMask:  "Meritocracy narratives attribute systemic outcomes to individual qualities, hiding the architecture of advantage.",
				SlipIndicators: []string{"success correlates with starting position", "failure blamed on individual", "structural advantages unnamed"},
			},
			{
				Type: domain.MaskInevitability,
				Keywords: []string{
					"no alternative", "the only way", "necessary", "unavoidable",
					"market forces", "economic reality", "there is no choice", "we must",
					"the situation demands", "forced by circumstances",
				},
				BehindTheMask:  "Inevitability is the most powerful mask. When choices vanish, power becomes invisible.",
				SlipIndicators: []string{"alternatives existed historically", "other systems do it differently", "someone benefits from 'no choice'"},
			},
			{
				Type: domain.MaskTradition,
				Keywords: []string{
					"always been done", "heritage", "custom", "roots", "values",
					"time-tested", "wisdom of the ages", "sacred", "founding principles",
				},
				BehindTheMask:  "Tradition selectively remembers. What is called 'traditional' was once someone's radical innovation.",
				SlipIndicators: []string{"the 'tradition' is recent", "it was contested when introduced", "other traditions are excluded"},
			},
			{
				Type: domain.MaskInnovation,
				Keywords: []string{
					"disrupt", "transform", "revolutionize", "cutting-edge", "future",
					"breakthrough", "paradigm shift", "next generation", "reimagine",
				},
				BehindTheMask:  "Innovation rhetoric often masks extraction. 'Disruption' frequently means destroying what communities built and selling it back.",
				SlipIndicators: []string{"innovation benefits investors most", "disrupted communities not consulted", "problems recreated at scale"},
			},
			{
				Type: domain.MaskExpertise,
				Keywords: []string{
					"expert", "specialist", "authority", "credentials", "certification",
					"qualified", "trained", "professional", "accredited", "peer-reviewed",
				},
				BehindTheMask:  "Expertise is real, but the gatekeeping of expertise is a power structure. Who decides what counts as knowing?",
				SlipIndicators: []string{"experts disagree but one view dominates", "credentials gate access", "lived experience dismissed"},
			},
		},
		Spells: []SpellEntry{
			{
				Type: domain.SpellOriginMyth,
				Keywords: []string{
					"founded", "began", "origin", "genesis", "founding", "started with",
					"our story", "once upon", "in the beginning", "from humble beginnings",
				},
				EmotionalHook:    "Belonging, legitimacy, pride",
				HiddenFunction:   "Creates loyalty by making the listener part of a sacred story",
				BreakingQuestion: "What does this origin story leave out? Who was already here?",
			},
			{
				Type: domain.SpellProgressNarrative,
				Keywords: []string{
					"better", "improving", "growing", "advancing", "developing",
					"more than ever", "unprecedented", "next level", "forward",
				},
				EmotionalHook:    "Hope, optimism, participation",
				HiddenFunction:   "Makes current trajectory feel inevitable and good; resistance feels regressive",
				BreakingQuestion: "Better for whom? By whose metric? At what cost to what?",
			},
			{
				Type: domain.SpellFearNarrative,
				Keywords: []string{
					"threat", "danger", "crisis", "enemy", "collapse", "catastrophe",
					"if we don't act now", "at risk", "under attack", "existential",
				},
				EmotionalHook:    "Fear, urgency, tribal bonding",
				HiddenFunction:   "Justifies extreme measures and suppresses dissent ('now is not the time')",
				BreakingQuestion: "Who benefits from this fear? What becomes possible when people are afraid?",
			},
			{
				Type: domain.SpellScarcity,
				Keywords: []string{
					"not enough", "limited", "scarce", "running out", "competition",
					"zero-sum", "fight for", "earn your place", "only the best",
				},
				EmotionalHook:    "Anxiety, competition, hoarding instinct",
				HiddenFunction:   "Prevents solidarity by making people see each other as competitors for artificially limited resources",
				BreakingQuestion: "Is this truly scarce, or is access being controlled? By whom?",
			},
			{
				Type: domain.SpellIdentity,
				Keywords: []string{
					"we are", "our people", "who we are", "our values", "our kind",
					"real americans", "true believers", "the faithful", "patriots",
				},
				EmotionalHook:    "Belonging, exclusion, tribal identity",
				HiddenFunction:   "Creates in-group that cannot question without losing identity",
				BreakingQuestion: "Who is 'we,' and who is excluded? What happens to those who disagree from within?",
			},
			{
				Type: domain.SpellComplexity,
				Keywords: []string{
					"it's complicated", "you wouldn't understand", "technical", "nuanced",
					"leave it to the experts", "too complex", "sophisticated", "intricate",
				},
				EmotionalHook:    "Intellectual insecurity, deference, helplessness",
				HiddenFunction:   "Prevents democratic engagement with decisions that affect everyone",
				BreakingQuestion: "Is it truly complex, or is complexity being weaponized to exclude?",
			},
			{
				Type: domain.SpellUnity,
				Keywords: []string{
					"together", "united", "one team", "shared purpose", "collective",
					"all of us", "in this together", "common goal", "solidarity",
				},
				EmotionalHook:    "Warmth, safety, community feeling",
				HiddenFunction:   "Suppresses legitimate disagreement by framing it as betrayal of the group",
				BreakingQuestion: "Whose version of 'together'? Who set the terms? Who is silenced by 'unity'?",
			},
			{
				Type: domain.SpellBinary,
				Keywords: []string{
					"either", "or", "with us", "against us", "right side of history",
					"good vs evil", "black and white", "choose a side", "no middle ground",
				},
				EmotionalHook:    "Moral clarity, righteousness, urgency",
				HiddenFunction:   "Eliminates the third option — the one that would reveal the frame itself",
				BreakingQuestion: "What would a third position look like? What does the binary hide?",
			},
		},
		Prisons: []PrisonEntry{
			{
				Type: domain.PrisonChoiceArchitecture,
				Keywords: []string{
					"option", "plan", "tier", "package", "menu", "choose from",
					"select", "pick", "preference", "customize",
				},
				Mechanism: "Freedom is performed through selection from a pre-curated menu. The menu IS the cage.",
				Door:      "Design your own menu. Ask: what option is missing, and why?",
			},
			{
				Type: domain.PrisonOvertonWindow,
				Keywords: []string{
					"mainstream", "fringe", "extreme", "moderate", "reasonable",
					"radical", "unthinkable", "acceptable", "politically feasible",
				},
				Mechanism: "The range of 'acceptable' opinion is itself a structure of control. Moving the window is a power act.",
				Door:      "Name the idea that cannot be spoken in this space. That is where the wall is.",
			},
			{
				Type: domain.PrisonDebtStructure,
				Keywords: []string{
					"loan", "mortgage", "tuition", "credit", "payment plan",
					"interest", "debt", "obligation", "owe", "afford",
				},
				Mechanism: "Debt restructures time itself. The indebted cannot afford to question because they cannot afford to lose.",
				Door:      "Calculate the total lifetime interest paid. Follow where it goes. That is the architecture.",
			},
			{
				Type: domain.PrisonCredentialGate,
				Keywords: []string{
					"degree", "certification", "accreditation", "qualified",
					"licensed", "authorized", "prerequisite", "requirements",
				},
				Mechanism: "Credentials gatekeep knowledge that often came from the uncredentialed. The gate charges rent on the commons.",
				Door:      "Find someone who knows this without the credential. They exist. Ask how they learned.",
			},
			{
				Type: domain.PrisonPlatformLock,
				Keywords: []string{
					"ecosystem", "integration", "compatible", "api", "platform",
					"migration cost", "switching cost", "vendor", "proprietary",
				},
				Mechanism: "Digital dependency creates invisible walls. Your data, your network, your history — held hostage by design.",
				Door:      "Export everything. If you can't, that IS the wall. Build on what you can leave.",
			},
			{
				Type: domain.PrisonTemporalTrap,
				Keywords: []string{
					"busy", "no time", "deadline", "urgent", "asap",
					"bandwidth", "overwhelmed", "sprint", "crunch", "hustle",
				},
				Mechanism: "The trap that prevents seeing all other traps. If you have no time to think, you have no time to be free.",
				Door:      "The most radical act may be stopping. Not forever. Just long enough to see.",
			},
			{
				Type: domain.PrisonIdentityCage,
				Keywords: []string{
					"people like us", "that's not who i am", "i could never",
					"that's not for people like me", "stay in your lane", "know your place",
				},
				Mechanism: "Identity becomes a cage when it limits possibility. 'Who you are' becomes 'what you're allowed to want.'",
				Door:      "Try the thing that 'people like you' don't do. The cage is made of stories, not steel.",
			},
			{
				Type: domain.PrisonLearnedHelplessness,
				Keywords: []string{
					"nothing changes", "what's the point", "they won't let us",
					"it's always been this way", "you can't fight", "too big to change",
				},
				Mechanism: "The most elegant prison. The prisoner maintains their own walls by believing escape is impossible.",
				Door:      "Find one person who escaped. One example breaks the spell. Then find another.",
			},
		},
	}
}
