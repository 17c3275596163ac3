package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtext/internal/signal"
)

func TestMapArchitectureEmptyCorpus(t *testing.T) {
	report := MapArchitecture(signal.Defaults(), nil)

	assert.Equal(t, 0, report.TotalFrames)
	assert.Empty(t, report.DominantFrame)
	assert.Zero(t, report.Density)
	assert.Contains(t, report.Insight, "No frames detected")
}

func TestMapArchitectureCountsPresencePerText(t *testing.T) {
	texts := []string{
		"The market rewards common sense.",
		"The free market is just common sense.",
		"Nothing to see here.",
	}
	report := MapArchitecture(signal.Defaults(), texts)

	// NORMATIVE and ECONOMIC both appear in two texts; the third matches
	// nothing. Presence is counted once per text regardless of how many
	// keywords of a subtype were found.
	assert.Equal(t, 4, report.TotalFrames)
	assert.Equal(t, 2, report.Frequency["NORMATIVE"])
	assert.Equal(t, 2, report.Frequency["ECONOMIC"])
	assert.Equal(t, 2, report.CoOccurrence["ECONOMIC-NORMATIVE"])
	assert.InDelta(t, 4.0/3.0, report.Density, 1e-9)

	// Equal counts tie-break by table order: NORMATIVE precedes ECONOMIC.
	assert.Equal(t, "NORMATIVE", report.DominantFrame)
	assert.Contains(t, report.Insight, "NORMATIVE")
	assert.Contains(t, report.Insight, "ECONOMIC-NORMATIVE")
}

func TestPairKeyUnordered(t *testing.T) {
	assert.Equal(t, pairKey("B", "A"), pairKey("A", "B"))
	assert.Equal(t, "A-B", pairKey("B", "A"))
}

func TestTopPairDeterministic(t *testing.T) {
	pair, n := topPair(map[string]int{"B-C": 2, "A-B": 2, "A-C": 1})
	assert.Equal(t, "A-B", pair)
	assert.Equal(t, 2, n)
}

func TestMostFrequentTableOrderTieBreak(t *testing.T) {
	tables := signal.Defaults()
	counts := map[string]int{"ECONOMIC": 3, "NORMATIVE": 3, "TEMPORAL": 1}
	require.Equal(t, "NORMATIVE", mostFrequent(counts, tables.FrameOrder()))
}
