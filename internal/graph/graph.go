// Package graph maintains the influence network: actors keyed by label with
// their current mask, plus an append-only list of directed weighted edges.
// One mutex guards the whole instance; every operation serializes.
package graph

import (
	"sort"
	"strings"
	"sync"

	"subtext/internal/domain"
	"subtext/internal/signal"
)

// InfluenceGraph is a network diagram of influence with masks removed.
// Safe for concurrent use.
type InfluenceGraph struct {
	mu     sync.Mutex
	tables *signal.Tables
	actors map[string]domain.Mask
	order  []string // actor insertion order, for deterministic dumps
	edges  []domain.InfluenceEdge
}

// New creates an empty influence graph matching against the given tables.
func New(tables *signal.Tables) *InfluenceGraph {
	return &InfluenceGraph{
		tables: tables,
		actors: make(map[string]domain.Mask),
	}
}

// AddActor upserts a mask by actor label. Re-adding an actor replaces its
// mask: last write wins.
func (g *InfluenceGraph) AddActor(mask domain.Mask) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addActorLocked(mask)
}

func (g *InfluenceGraph) addActorLocked(mask domain.Mask) {
	if _, ok := g.actors[mask.Actor]; !ok {
		g.order = append(g.order, mask.Actor)
	}
	g.actors[mask.Actor] = mask
}

// AddEdge appends a directed influence edge. Edges are never removed or
// mutated. The weight is accepted as given.
func (g *InfluenceGraph) AddEdge(edge domain.InfluenceEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges = append(g.edges, edge)
}

// IdentifyMasks scans text for performed identities and records every hit in
// the graph. Ranking uses raw density.
//
// The actor label is synthesized from the matched subtype alone, so two
// scans of different texts that match the same subtype overwrite one shared
// actor slot. Callers that need distinct actors must AddActor explicitly.
func (g *InfluenceGraph) IdentifyMasks(text string) []domain.Mask {
	textLower := strings.ToLower(text)

	type rankedMask struct {
		density float64
		mask    domain.Mask
	}
	var results []rankedMask

	g.mu.Lock()
	for _, entry := range g.tables.Masks {
		var matched []string
		for _, kw := range entry.Keywords {
			if strings.Contains(textLower, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		mask := domain.Mask{
			ID:              domain.NewID(),
			Actor:           "[Actor performing " + string(entry.Type) + "]",
			Type:            entry.Type,
			FormalRole:      strings.Join(matched, ", "),
			ActualFunction:  entry.BehindTheMask,
			Performance:     "Signals: " + strings.Join(matched, ", "),
			HiddenHand:      entry.BehindTheMask,
			Vulnerabilities: entry.SlipIndicators,
		}
		g.addActorLocked(mask)
		results = append(results, rankedMask{
			density: float64(len(matched)) / float64(len(entry.Keywords)),
			mask:    mask,
		})
	}
	g.mu.Unlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].density > results[j].density
	})
	masks := make([]domain.Mask, len(results))
	for i, r := range results {
		masks[i] = r.mask
	}
	return masks
}
