// Package collective accumulates anonymized analysis results across
// invocations into running frequency statistics. Contributions carry
// structural pattern tags only; no text, no actor names.
package collective

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"subtext/internal/codec"
	"subtext/internal/domain"
	"subtext/internal/signal"
)

// historyCap bounds the snapshot's anonymized history. Counters keep the
// full totals; only the raw history is trimmed.
const historyCap = 100

// Archive receives every contribution for retention beyond the snapshot's
// history cap. The aggregator works fine without one.
type Archive interface {
	Append(contribution domain.AnonymizedContribution) error
}

// Aggregator is the collective map of recurring structures. Thread-safe;
// in-memory with optional snapshot persistence.
type Aggregator struct {
	mu      sync.Mutex
	path    string
	tables  *signal.Tables
	log     *zap.Logger
	archive Archive

	history []domain.AnonymizedContribution
	frames  map[string]int
	masks   map[string]int
	spells  map[string]int
	prisons map[string]int
	total   int
}

// Map is the aggregated view returned to contributors.
type Map struct {
	TotalAnalyses      int                `json:"total_analyses"`
	MostCommonFrame    string             `json:"most_common_frame,omitempty"`
	MostCommonMask     string             `json:"most_common_mask,omitempty"`
	MostPowerfulSpell  string             `json:"most_powerful_spell,omitempty"`
	MostElegantPrison  string             `json:"most_elegant_prison,omitempty"`
	FrameDistribution  map[string]float64 `json:"frame_distribution"`
	MaskDistribution   map[string]float64 `json:"mask_distribution"`
	SpellDistribution  map[string]float64 `json:"spell_distribution"`
	PrisonDistribution map[string]float64 `json:"prison_distribution"`
	AverageAwareness   float64            `json:"average_awareness"`
	Insight            string             `json:"insight"`
}

// New creates an aggregator. A non-empty path enables persistence; an
// existing snapshot there is loaded, and a corrupt or unreadable one is
// logged and ignored so the aggregator always starts usable.
func New(tables *signal.Tables, path string, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Aggregator{
		path:    path,
		tables:  tables,
		log:     log,
		frames:  make(map[string]int),
		masks:   make(map[string]int),
		spells:  make(map[string]int),
		prisons: make(map[string]int),
	}
	if path != "" {
		if err := a.load(); err != nil {
			log.Warn("collective snapshot unusable, starting empty",
				zap.String("path", path), zap.Error(err))
		}
	}
	return a
}

// AttachArchive wires a durable archive in. Archive failures are logged,
// never propagated: the in-memory state is the source of truth.
func (a *Aggregator) AttachArchive(archive Archive) {
	a.mu.Lock()
	a.archive = archive
	a.mu.Unlock()
}

// Contribute anonymizes an analysis, folds it into the running statistics,
// persists when backed by a path, and returns the updated map. The only
// error surfaced is a snapshot write failure.
func (a *Aggregator) Contribute(analysis *domain.SystemAnalysis) (Map, error) {
	contribution := analysis.Anonymize()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history, contribution)
	a.total++
	for _, t := range contribution.FrameTypes {
		a.frames[t]++
	}
	for _, t := range contribution.MaskTypes {
		a.masks[t]++
	}
	for _, t := range contribution.SpellTypes {
		a.spells[t]++
	}
	for _, t := range contribution.PrisonTypes {
		a.prisons[t]++
	}

	if a.archive != nil {
		if err := a.archive.Append(contribution); err != nil {
			a.log.Warn("failed to archive contribution", zap.Error(err))
		}
	}

	if a.path != "" {
		if err := a.save(); err != nil {
			return a.mapLocked(), fmt.Errorf("failed to persist collective snapshot: %w", err)
		}
	}
	return a.mapLocked(), nil
}

// CollectiveMap returns the current aggregated view.
func (a *Aggregator) CollectiveMap() Map {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mapLocked()
}

func (a *Aggregator) mapLocked() Map {
	total := a.total
	if total < 1 {
		total = 1
	}

	var awarenessSum float64
	for _, c := range a.history {
		awarenessSum += c.AwarenessScore
	}
	count := len(a.history)
	if count < 1 {
		count = 1
	}

	return Map{
		TotalAnalyses:      a.total,
		MostCommonFrame:    mostFrequent(a.frames, a.tables.FrameOrder()),
		MostCommonMask:     mostFrequent(a.masks, a.tables.MaskOrder()),
		MostPowerfulSpell:  mostFrequent(a.spells, a.tables.SpellOrder()),
		MostElegantPrison:  mostFrequent(a.prisons, a.tables.PrisonOrder()),
		FrameDistribution:  proportions(a.frames, total),
		MaskDistribution:   proportions(a.masks, total),
		SpellDistribution:  proportions(a.spells, total),
		PrisonDistribution: proportions(a.prisons, total),
		AverageAwareness:   round3(awarenessSum / float64(count)),
		Insight:            a.insightLocked(),
	}
}

func (a *Aggregator) insightLocked() string {
	if a.total < 1 {
		return "The collective map is empty. You are the first seeker. What you see matters."
	}

	var parts []string
	if top := mostFrequent(a.frames, a.tables.FrameOrder()); top != "" {
		parts = append(parts, "The most common frame across all analyses is "+top)
	}
	if top := mostFrequent(a.prisons, a.tables.PrisonOrder()); top != "" {
		parts = append(parts, "the most prevalent prison is "+top)
	}
	if top := mostFrequent(a.spells, a.tables.SpellOrder()); top != "" {
		parts = append(parts, "the most potent spell is "+top)
	}

	base := ""
	if len(parts) > 0 {
		base = joinSentences(parts) + ". "
	}
	return fmt.Sprintf("Across %d analyses: %sThe collective sees further than any individual.", a.total, base)
}

// mostFrequent picks the highest-count tag, breaking ties by table order.
// Tags absent from the order (from a replaced table) are considered after
// it, in no particular priority among themselves.
func mostFrequent(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	seen := make(map[string]bool, len(order))
	for _, tag := range order {
		seen[tag] = true
		if c := counts[tag]; c > bestCount {
			best, bestCount = tag, c
		}
	}
	for tag, c := range counts {
		if !seen[tag] && c > bestCount {
			best, bestCount = tag, c
		}
	}
	return best
}

func proportions(counts map[string]int, total int) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for tag, c := range counts {
		out[tag] = round3(float64(c) / float64(total))
	}
	return out
}

func joinSentences(parts []string) string {
	s := parts[0]
	for _, p := range parts[1:] {
		s += ". " + p
	}
	return s
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// snapshot is the persisted form. History is trimmed to the cap; the
// counters carry the untrimmed totals.
type snapshot struct {
	TotalAnalyses int                             `json:"total_analyses" yaml:"total_analyses"`
	Frames        map[string]int                  `json:"frame_frequencies" yaml:"frame_frequencies"`
	Masks         map[string]int                  `json:"mask_frequencies" yaml:"mask_frequencies"`
	Spells        map[string]int                  `json:"spell_frequencies" yaml:"spell_frequencies"`
	Prisons       map[string]int                  `json:"prison_frequencies" yaml:"prison_frequencies"`
	Analyses      []domain.AnonymizedContribution `json:"analyses" yaml:"analyses"`
	SavedAt       time.Time                       `json:"saved_at" yaml:"saved_at"`
}

func (a *Aggregator) save() error {
	history := a.history
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	snap := snapshot{
		TotalAnalyses: a.total,
		Frames:        a.frames,
		Masks:         a.masks,
		Spells:        a.spells,
		Prisons:       a.prisons,
		Analyses:      history,
		SavedAt:       time.Now().UTC(),
	}

	f, err := os.Create(a.path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	return codec.ForPath(a.path).Encode(f, snap)
}

func (a *Aggregator) load() error {
	f, err := os.Open(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := codec.ForPath(a.path).Decode(f, &snap); err != nil {
		return err
	}

	a.total = snap.TotalAnalyses
	a.history = snap.Analyses
	if snap.Frames != nil {
		a.frames = snap.Frames
	}
	if snap.Masks != nil {
		a.masks = snap.Masks
	}
	if snap.Spells != nil {
		a.spells = snap.Spells
	}
	if snap.Prisons != nil {
		a.prisons = snap.Prisons
	}
	return nil
}
