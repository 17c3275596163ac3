package domain

import "time"

// Crumb is a trace left for other seekers. Crumbs are append-only: once
// dropped into a trail they are never mutated or removed.
type Crumb struct {
	ID             string     `json:"crumb_id"`
	Type           CrumbType  `json:"crumb_type"`
	Content        string     `json:"content"`
	Context        string     `json:"context"`
	Visibility     string     `json:"visibility"`
	TargetAudience string     `json:"target_audience"`
	DecayTime      *time.Time `json:"decay_time"`
	ChainID        string     `json:"chain_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

// InfluenceEdge is a directed relationship of power between two actors.
// Weight defaults to 0.5 and is accepted as given, never clamped.
type InfluenceEdge struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Relation string  `json:"relation"` // controls | funds | appoints | influences | depends_on
	Weight   float64 `json:"weight"`
	Visible  bool    `json:"visible"`
	MaskUsed string  `json:"mask_used,omitempty"`
}
