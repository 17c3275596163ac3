package trail

import (
	"fmt"
	"os"
	"time"

	"subtext/internal/codec"
	"subtext/internal/domain"
)

// Snapshot is the persisted form of a trail.
type Snapshot struct {
	TrailID string              `json:"trail_id" yaml:"trail_id"`
	Crumbs  []domain.Crumb      `json:"crumbs" yaml:"crumbs"`
	Chains  map[string][]string `json:"chains" yaml:"chains"`
	SavedAt time.Time           `json:"saved_at" yaml:"saved_at"`
}

// Persist writes the trail to path, codec chosen by extension.
func (t *Trail) Persist(path string) error {
	t.mu.Lock()
	snap := Snapshot{
		TrailID: t.id,
		Crumbs:  make([]domain.Crumb, len(t.crumbs)),
		Chains:  make(map[string][]string, len(t.chains)),
		SavedAt: time.Now().UTC(),
	}
	copy(snap.Crumbs, t.crumbs)
	for chain, ids := range t.chains {
		snap.Chains[chain] = append([]string(nil), ids...)
	}
	t.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trail snapshot: %w", err)
	}
	defer f.Close()

	if err := codec.ForPath(path).Encode(f, snap); err != nil {
		return fmt.Errorf("failed to write trail snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from path and returns the reconstructed trail.
func Load(path string) (*Trail, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trail snapshot: %w", err)
	}
	defer f.Close()

	var snap Snapshot
	if err := codec.ForPath(path).Decode(f, &snap); err != nil {
		return nil, fmt.Errorf("failed to read trail snapshot: %w", err)
	}

	t := New(snap.TrailID)
	t.crumbs = snap.Crumbs
	if snap.Chains != nil {
		t.chains = snap.Chains
	}
	return t, nil
}
