// Package trail implements the crumb trail: an append-only store of small
// records grouped into chains, with deterministic opaque markers and flat
// file persistence. One mutex guards each store; every operation serializes.
package trail

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"subtext/internal/domain"
)

// Trail is a distributed network of insights, hidden in plain sight.
// Crumbs are stored in memory and can be persisted to a snapshot file.
type Trail struct {
	mu     sync.Mutex
	id     string
	crumbs []domain.Crumb
	chains map[string][]string // chain id -> crumb ids, insertion order
}

// New creates an empty trail. An empty id gets a generated one.
func New(id string) *Trail {
	if id == "" {
		id = domain.NewChainID()
	}
	return &Trail{
		id:     id,
		chains: make(map[string][]string),
	}
}

// ID returns the trail's identifier, which doubles as the default chain id
// and the default marker key.
func (t *Trail) ID() string {
	return t.id
}

// DropCrumb constructs and appends a crumb. An empty chainID registers the
// crumb under the trail's own id.
func (t *Trail) DropCrumb(content string, crumbType domain.CrumbType, context, visibility, audience, chainID string) domain.Crumb {
	if visibility == "" {
		visibility = domain.VisibilityHidden
	}
	if audience == "" {
		audience = "seekers"
	}
	if chainID == "" {
		chainID = t.id
	}

	crumb := domain.Crumb{
		ID:             domain.NewID(),
		Type:           crumbType,
		Content:        content,
		Context:        context,
		Visibility:     visibility,
		TargetAudience: audience,
		ChainID:        chainID,
		CreatedAt:      time.Now().UTC(),
	}

	t.mu.Lock()
	t.crumbs = append(t.crumbs, crumb)
	t.chains[chainID] = append(t.chains[chainID], crumb.ID)
	t.mu.Unlock()

	return crumb
}

// GenerateFromAnalysis derives crumbs from a completed analysis, all linked
// under one fresh chain id: frames become questions, masks become patterns,
// spells become paradoxes, prisons become trails to doors. When anything was
// generated, a final bridge crumb summarizes the whole batch.
func (t *Trail) GenerateFromAnalysis(analysis *domain.SystemAnalysis) []domain.Crumb {
	var generated []domain.Crumb
	chainID := domain.NewID()

	for _, frame := range analysis.Frames {
		for _, question := range frame.ForbiddenQuestions {
			generated = append(generated, t.DropCrumb(
				question, domain.CrumbQuestion,
				"Generated from "+frame.Name+" detection", "", "", chainID))
		}
	}

	for _, mask := range analysis.Masks {
		generated = append(generated, t.DropCrumb(
			fmt.Sprintf("When you hear '%s', look for: %s", mask.FormalRole, mask.ActualFunction),
			domain.CrumbPattern,
			"Generated from "+string(mask.Type)+" mask detection", "", "", chainID))
	}

	for _, spell := range analysis.Spells {
		generated = append(generated, t.DropCrumb(
			spell.CounterNarrative, domain.CrumbParadox,
			"Counter to "+spell.Name, "", "", chainID))
	}

	for _, prison := range analysis.Prisons {
		for _, exit := range prison.ExitConditions {
			generated = append(generated, t.DropCrumb(
				exit, domain.CrumbTrail,
				"Door in "+prison.Name, "", "", chainID))
		}
	}

	if len(generated) > 0 {
		bridge := t.DropCrumb(
			fmt.Sprintf("This system has %d visible frames, %d masks in play, %d active spells, and %d prisons operating. "+
				"Awareness score: %.2f. The first step is always the same: see.",
				len(analysis.Frames), len(analysis.Masks), len(analysis.Spells), len(analysis.Prisons),
				analysis.AwarenessScore()),
			domain.CrumbBridge, "Meta-analysis bridge", "", "", chainID)
		generated = append(generated, bridge)
	}

	return generated
}

// FollowChain returns the crumbs registered under a chain, in store order.
// An unknown chain yields an empty slice.
func (t *Trail) FollowChain(chainID string) []domain.Crumb {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := t.chains[chainID]
	if len(ids) == 0 {
		return nil
	}
	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}

	var out []domain.Crumb
	for _, c := range t.crumbs {
		if member[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// Crumbs returns a copy of every stored crumb.
func (t *Trail) Crumbs() []domain.Crumb {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Crumb, len(t.crumbs))
	copy(out, t.crumbs)
	return out
}

// EncodeCrumb produces the crumb's deterministic opaque marker:
//
//	sk:<8 hex of sha256(key:crumb_id)>:<16 hex of sha256(content)>
//
// An empty key falls back to the trail id. The marker never contains the
// crumb content and is not reversible; it exists only for opaque matching.
func (t *Trail) EncodeCrumb(crumb domain.Crumb, key string) string {
	salt := key
	if salt == "" {
		salt = t.id
	}
	marker := sha256.Sum256([]byte(salt + ":" + crumb.ID))
	contentHash := sha256.Sum256([]byte(crumb.Content))
	return "sk:" + hex.EncodeToString(marker[:])[:8] + ":" + hex.EncodeToString(contentHash[:])[:16]
}

// DecodeTrail scans the store, recomputing each crumb's marker and returning
// those whose marker appears in the given set. Non-matching markers are not
// an error; they simply match nothing.
func (t *Trail) DecodeTrail(markers []string) []domain.Crumb {
	wanted := make(map[string]bool, len(markers))
	for _, m := range markers {
		wanted[m] = true
	}

	t.mu.Lock()
	crumbs := make([]domain.Crumb, len(t.crumbs))
	copy(crumbs, t.crumbs)
	t.mu.Unlock()

	var decoded []domain.Crumb
	for _, c := range crumbs {
		if wanted[t.EncodeCrumb(c, "")] {
			decoded = append(decoded, c)
		}
	}
	return decoded
}
