package domain

import "time"

// Frame is an invisible structure that shapes perception.
//
// Strength and Visibility are inversely related: the more fully a frame has
// been naturalized, the less visible it is. Both live in [0,1] but are
// accepted as given; the engine does not clamp caller-supplied values.
type Frame struct {
	ID                     string    `json:"frame_id"`
	Name                   string    `json:"name"`
	Type                   FrameType `json:"frame_type"`
	Description            string    `json:"description"`
	UnspokenRules          []string  `json:"unspoken_rules"`
	NaturalizedAssumptions []string  `json:"naturalized_assumptions"`
	ForbiddenQuestions     []string  `json:"forbidden_questions"`
	Beneficiaries          []string  `json:"beneficiaries"`
	EdgesOfThinkable       []string  `json:"edges_of_thinkable"`
	Strength               float64   `json:"strength"`
	Visibility             float64   `json:"visibility"`
	DetectedAt             time.Time `json:"detected_at"`
}

// Mask is a performed identity that conceals actual function.
type Mask struct {
	ID              string   `json:"mask_id"`
	Actor           string   `json:"actor"`
	Type            MaskType `json:"mask_type"`
	FormalRole      string   `json:"formal_role"`
	ActualFunction  string   `json:"actual_function"`
	Performance     string   `json:"performance"`
	HiddenHand      string   `json:"hidden_hand"`
	Dependencies    []string `json:"dependencies"`
	Vulnerabilities []string `json:"vulnerabilities"`
}

// Spell is a narrative that enchants perception. Potency scales with signal
// density (factor 2.5, capped at 1); Reach is the raw density.
type Spell struct {
	ID               string    `json:"spell_id"`
	Name             string    `json:"name"`
	Type             SpellType `json:"spell_type"`
	Narrative        string    `json:"narrative"`
	EmotionalPayload string    `json:"emotional_payload"`
	HiddenAssumption string    `json:"hidden_assumption"`
	Erasure          string    `json:"erasure"`
	CuiBono          string    `json:"cui_bono"`
	CounterNarrative string    `json:"counter_narrative"`
	Potency          float64   `json:"potency"`
	Reach            float64   `json:"reach"`
}

// Prison is an invisible constraint on possibility. Elegance measures how
// well the constraint hides itself: 1.0 means the prisoner loves the cage.
type Prison struct {
	ID                  string     `json:"prison_id"`
	Name                string     `json:"name"`
	Type                PrisonType `json:"prison_type"`
	Description         string     `json:"description"`
	MissingChoices      []string   `json:"missing_choices"`
	ForbiddenPaths      []string   `json:"forbidden_paths"`
	UnimaginableFutures []string   `json:"unimaginable_futures"`
	InvisibleWalls      []string   `json:"invisible_walls"`
	ExitConditions      []string   `json:"exit_conditions"`
	Elegance            float64    `json:"elegance"`
}
