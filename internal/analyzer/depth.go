package analyzer

import (
	"math"

	"subtext/internal/domain"
)

// DepthAssessment grades how far into the architecture an analysis saw.
type DepthAssessment struct {
	Depth           domain.SeeingDepth `json:"depth"`
	AwarenessScore  float64            `json:"awareness_score"`
	FramesDetected  int                `json:"frames_detected"`
	MasksDetected   int                `json:"masks_detected"`
	SpellsDetected  int                `json:"spells_detected"`
	PrisonsDetected int                `json:"prisons_detected"`
	SelfExamined    bool               `json:"self_examined"`
	CrumbsGenerated int                `json:"crumbs_generated"`
	Interpretation  string             `json:"interpretation"`
}

var depthDescriptions = map[domain.SeeingDepth]string{
	domain.DepthSurface: "You are seeing content — what is said. " +
		"The architecture that shapes the saying is still invisible.",
	domain.DepthPattern: "You are beginning to see patterns — recurring shapes across contexts. " +
		"The next step is to see the structure that generates these patterns.",
	domain.DepthStructure: "You are seeing architecture — the invisible structures that shape perception and possibility. " +
		"The next step is to see what generates the architecture itself.",
	domain.DepthGenerative: "You are seeing the generative layer — the forces, incentives, and dynamics that produce " +
		"the architecture. You are beginning to see how systems create themselves.",
	domain.DepthRecursive: "You are seeing yourself seeing. You recognize that your own perception has a structure, " +
		"that your analysis has its own frames, its own blind spots. This is rare.",
	domain.DepthIntegral: "You are seeing the seeing itself. Not the content, not the structure, not even the you " +
		"who sees — but the awareness in which all of this appears. " +
		"This is where the skeleton key points but cannot follow. " +
		"The rest is yours.",
}

// AssessSeeingDepth maps an analysis onto the six-level ladder, from
// surface (content only) to integral (the seeing itself).
func (a *Analyzer) AssessSeeingDepth(analysis *domain.SystemAnalysis) DepthAssessment {
	score := analysis.AwarenessScore()
	hasExam := analysis.SelfExamination != nil
	hasCrumbs := len(analysis.Crumbs) > 0
	frames := len(analysis.Frames)
	spells := len(analysis.Spells)
	prisons := len(analysis.Prisons)

	var depth domain.SeeingDepth
	switch {
	case hasExam && score > 0.8:
		depth = domain.DepthIntegral
	case hasExam:
		depth = domain.DepthRecursive
	case hasCrumbs && score > 0.6:
		depth = domain.DepthGenerative
	case frames > 2 && spells > 1 && prisons > 1:
		depth = domain.DepthStructure
	case frames > 0 || spells > 0:
		depth = domain.DepthPattern
	default:
		depth = domain.DepthSurface
	}

	return DepthAssessment{
		Depth:           depth,
		AwarenessScore:  math.Round(score*1000) / 1000,
		FramesDetected:  frames,
		MasksDetected:   len(analysis.Masks),
		SpellsDetected:  spells,
		PrisonsDetected: prisons,
		SelfExamined:    hasExam,
		CrumbsGenerated: len(analysis.Crumbs),
		Interpretation:  depthDescriptions[depth],
	}
}
