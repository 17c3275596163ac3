package domain

import (
	"encoding/json"
	"time"
)

// SystemAnalysis is the composite result of one full scan: all four finding
// kinds, the crumbs generated from them, the influence edges relevant to the
// run, and an optional self-examination.
type SystemAnalysis struct {
	ID              string           `json:"analysis_id"`
	SystemName      string           `json:"system_name"`
	Frames          []Frame          `json:"frames"`
	Masks           []Mask           `json:"masks"`
	Spells          []Spell          `json:"spells"`
	Prisons         []Prison         `json:"prisons"`
	Crumbs          []Crumb          `json:"crumbs"`
	InfluenceEdges  []InfluenceEdge  `json:"influence_edges"`
	SelfExamination *SelfExamination `json:"self_examination"`
	SeeingDepth     SeeingDepth      `json:"seeing_depth"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}

// NewSystemAnalysis returns an analysis shell with a fresh id and timestamp.
func NewSystemAnalysis(systemName string) *SystemAnalysis {
	return &SystemAnalysis{
		ID:          NewID(),
		SystemName:  systemName,
		SeeingDepth: DepthSurface,
		AnalyzedAt:  time.Now().UTC(),
	}
}

// AwarenessScore reports how much of the invisible architecture has been
// mapped, in [0,1]. It is recomputed from current state on every call and
// never cached, so it cannot go stale.
func (a *SystemAnalysis) AwarenessScore() float64 {
	cap1 := func(v float64) float64 {
		if v > 1 {
			return 1
		}
		return v
	}
	components := []float64{
		cap1(float64(len(a.Frames)) / 3),
		cap1(float64(len(a.Masks)) / 3),
		cap1(float64(len(a.Spells)) / 3),
		cap1(float64(len(a.Prisons)) / 3),
		cap1(float64(len(a.InfluenceEdges)) / 5),
	}
	if a.SelfExamination != nil {
		components = append(components, 1.0)
	} else {
		components = append(components, 0.0)
	}
	var sum float64
	for _, c := range components {
		sum += c
	}
	return sum / float64(len(components))
}

// Anonymize strips the analysis down to its structural pattern tags for
// contribution to the collective.
func (a *SystemAnalysis) Anonymize() AnonymizedContribution {
	c := AnonymizedContribution{
		AwarenessScore: a.AwarenessScore(),
		SeeingDepth:    a.SeeingDepth,
		ContributedAt:  time.Now().UTC(),
	}
	for _, f := range a.Frames {
		c.FrameTypes = append(c.FrameTypes, string(f.Type))
	}
	for _, m := range a.Masks {
		c.MaskTypes = append(c.MaskTypes, string(m.Type))
	}
	for _, s := range a.Spells {
		c.SpellTypes = append(c.SpellTypes, string(s.Type))
	}
	for _, p := range a.Prisons {
		c.PrisonTypes = append(c.PrisonTypes, string(p.Type))
	}
	return c
}

// MarshalJSON includes the derived awareness score as a plain number so
// exports carry it without it ever being stored on the struct.
func (a *SystemAnalysis) MarshalJSON() ([]byte, error) {
	type alias SystemAnalysis
	return json.Marshal(struct {
		*alias
		AwarenessScore float64 `json:"awareness_score"`
	}{
		alias:          (*alias)(a),
		AwarenessScore: a.AwarenessScore(),
	})
}
