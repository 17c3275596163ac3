// Package archive keeps a durable record of every collective contribution
// in SQLite, past the snapshot's history cap.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"subtext/internal/domain"
)

// Store is an append-only SQLite archive of anonymized contributions.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the archive database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contributions (
		id TEXT PRIMARY KEY,
		frame_types JSON NOT NULL,
		mask_types JSON NOT NULL,
		spell_types JSON NOT NULL,
		prison_types JSON NOT NULL,
		awareness_score REAL NOT NULL,
		seeing_depth TEXT NOT NULL,
		contributed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_contributions_at ON contributions(contributed_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records one contribution. Tag lists are stored as JSON arrays.
func (s *Store) Append(c domain.AnonymizedContribution) error {
	frames, err := json.Marshal(emptyIfNil(c.FrameTypes))
	if err != nil {
		return fmt.Errorf("failed to marshal frame types: %w", err)
	}
	masks, err := json.Marshal(emptyIfNil(c.MaskTypes))
	if err != nil {
		return fmt.Errorf("failed to marshal mask types: %w", err)
	}
	spells, err := json.Marshal(emptyIfNil(c.SpellTypes))
	if err != nil {
		return fmt.Errorf("failed to marshal spell types: %w", err)
	}
	prisons, err := json.Marshal(emptyIfNil(c.PrisonTypes))
	if err != nil {
		return fmt.Errorf("failed to marshal prison types: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO contributions
			(id, frame_types, mask_types, spell_types, prison_types,
			 awareness_score, seeing_depth, contributed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		domain.NewID(), frames, masks, spells, prisons,
		c.AwarenessScore, string(c.SeeingDepth), c.ContributedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}
	return nil
}

// Count returns the total number of archived contributions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contributions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count contributions: %w", err)
	}
	return n, nil
}

// Recent returns up to n contributions, newest first.
func (s *Store) Recent(n int) ([]domain.AnonymizedContribution, error) {
	rows, err := s.db.Query(`
		SELECT frame_types, mask_types, spell_types, prison_types,
		       awareness_score, seeing_depth, contributed_at
		FROM contributions
		ORDER BY contributed_at DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributions: %w", err)
	}
	defer rows.Close()

	var out []domain.AnonymizedContribution
	for rows.Next() {
		var (
			frames, masks, spells, prisons []byte
			awareness                      float64
			depth, at                      string
		)
		if err := rows.Scan(&frames, &masks, &spells, &prisons, &awareness, &depth, &at); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}

		c := domain.AnonymizedContribution{
			AwarenessScore: awareness,
			SeeingDepth:    domain.SeeingDepth(depth),
		}
		if err := json.Unmarshal(frames, &c.FrameTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal frame types: %w", err)
		}
		if err := json.Unmarshal(masks, &c.MaskTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mask types: %w", err)
		}
		if err := json.Unmarshal(spells, &c.SpellTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spell types: %w", err)
		}
		if err := json.Unmarshal(prisons, &c.PrisonTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prison types: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, at); err == nil {
			c.ContributedAt = ts
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
