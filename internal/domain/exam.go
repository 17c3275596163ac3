package domain

import "time"

// StructuralMetrics summarizes the scanner's own source tree, gathered by
// the introspect package. When the source could not be read, Error carries
// the reason and every other field is zero.
type StructuralMetrics struct {
	TotalFiles        int     `json:"total_files,omitempty"`
	TotalLines        int     `json:"total_lines,omitempty"`
	NumFunctions      int     `json:"num_functions,omitempty"`
	NumTypes          int     `json:"num_types,omitempty"`
	AvgComplexity     float64 `json:"avg_complexity,omitempty"`
	MaxComplexity     int     `json:"max_complexity,omitempty"`
	MaxComplexityFunc string  `json:"max_complexity_func,omitempty"`
	DocCoverage       float64 `json:"doc_coverage,omitempty"`
	SelfReferential   bool    `json:"self_referential"`
	Error             string  `json:"error,omitempty"`
}

// SelfExamination is a recursive critique of the scanner itself.
type SelfExamination struct {
	ID               string            `json:"exam_id"`
	AssumptionsFound []string          `json:"assumptions_found"`
	BlindSpots       []string          `json:"blind_spots"`
	MisuseVectors    []string          `json:"misuse_vectors"`
	CreatorBiases    []string          `json:"creator_biases"`
	EvolutionNeeds   []string          `json:"evolution_needs"`
	Metrics          StructuralMetrics `json:"structural_metrics"`
	Timestamp        time.Time         `json:"timestamp"`
}

// AnonymizedContribution is what the collective aggregator keeps from one
// analysis: structural pattern tags only, no content and no actor names.
type AnonymizedContribution struct {
	FrameTypes     []string    `json:"frame_types"`
	MaskTypes      []string    `json:"mask_types"`
	SpellTypes     []string    `json:"spell_types"`
	PrisonTypes    []string    `json:"prison_types"`
	AwarenessScore float64     `json:"awareness_score"`
	SeeingDepth    SeeingDepth `json:"seeing_depth"`
	ContributedAt  time.Time   `json:"contributed_at"`
}
