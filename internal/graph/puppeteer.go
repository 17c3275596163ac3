package graph

import (
	"math"
	"sort"

	"subtext/internal/domain"
)

// Puppeteer describes an actor with disproportionate, partly concealed
// outgoing influence.
type Puppeteer struct {
	Actor             string  `json:"actor"`
	OutgoingInfluence float64 `json:"outgoing_influence"`
	IncomingInfluence float64 `json:"incoming_influence"`
	HiddenConnections int     `json:"hidden_connections"`
	PuppetScore       float64 `json:"puppet_score"`
}

// NetworkReport is the full dump of the graph with masks removed.
type NetworkReport struct {
	Actors              map[string]domain.Mask `json:"actors"`
	Relationships       []domain.InfluenceEdge `json:"relationships"`
	HiddenRelationships []domain.InfluenceEdge `json:"hidden_relationships"`
	Puppeteers          []Puppeteer            `json:"puppeteers"`
	TotalActors         int                    `json:"total_actors"`
	TotalEdges          int                    `json:"total_edges"`
	HiddenEdgeRatio     float64                `json:"hidden_edge_ratio"`
}

// FindPuppeteers ranks actors whose summed outgoing edge weight exceeds
// their incoming weight and who hold at least one invisible outgoing edge.
// Score is out/max(in, 0.01) * (1 + hidden), descending.
func (g *InfluenceGraph) FindPuppeteers() []Puppeteer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.findPuppeteersLocked()
}

func (g *InfluenceGraph) findPuppeteersLocked() []Puppeteer {
	outgoing := make(map[string]float64)
	incoming := make(map[string]float64)
	hidden := make(map[string]int)

	for _, e := range g.edges {
		outgoing[e.Source] += e.Weight
		incoming[e.Target] += e.Weight
		if !e.Visible {
			hidden[e.Source]++
		}
	}

	var puppeteers []Puppeteer
	for _, actor := range g.order {
		out := outgoing[actor]
		in := incoming[actor]
		h := hidden[actor]
		if out <= in || h == 0 {
			continue
		}
		puppeteers = append(puppeteers, Puppeteer{
			Actor:             actor,
			OutgoingInfluence: round3(out),
			IncomingInfluence: round3(in),
			HiddenConnections: h,
			PuppetScore:       round3(out / math.Max(in, 0.01) * float64(1+h)),
		})
	}

	sort.SliceStable(puppeteers, func(i, j int) bool {
		return puppeteers[i].PuppetScore > puppeteers[j].PuppetScore
	})
	return puppeteers
}

// UnmaskNetwork generates the full network diagram: every actor, every edge,
// the invisible subset, the puppeteer ranking, and totals.
func (g *InfluenceGraph) UnmaskNetwork() NetworkReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	actors := make(map[string]domain.Mask, len(g.actors))
	for name, mask := range g.actors {
		actors[name] = mask
	}

	edges := make([]domain.InfluenceEdge, len(g.edges))
	copy(edges, g.edges)

	var hiddenEdges []domain.InfluenceEdge
	for _, e := range g.edges {
		if !e.Visible {
			hiddenEdges = append(hiddenEdges, e)
		}
	}

	ratio := 0.0
	if len(g.edges) > 0 {
		ratio = float64(len(hiddenEdges)) / float64(len(g.edges))
	}

	return NetworkReport{
		Actors:              actors,
		Relationships:       edges,
		HiddenRelationships: hiddenEdges,
		Puppeteers:          g.findPuppeteersLocked(),
		TotalActors:         len(g.actors),
		TotalEdges:          len(g.edges),
		HiddenEdgeRatio:     ratio,
	}
}

// Edges returns a copy of the edge list.
func (g *InfluenceGraph) Edges() []domain.InfluenceEdge {
	g.mu.Lock()
	defer g.mu.Unlock()
	edges := make([]domain.InfluenceEdge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
