package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtext/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func contribution(frames []string, awareness float64, at time.Time) domain.AnonymizedContribution {
	return domain.AnonymizedContribution{
		FrameTypes:     frames,
		MaskTypes:      []string{"AUTHORITY"},
		SpellTypes:     []string{},
		PrisonTypes:    nil,
		AwarenessScore: awareness,
		SeeingDepth:    domain.DepthStructure,
		ContributedAt:  at,
	}
}

func TestAppendAndCount(t *testing.T) {
	store := newTestStore(t)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.Append(contribution([]string{"ECONOMIC"}, 0.5, time.Now())))
	require.NoError(t, store.Append(contribution([]string{"NORMATIVE"}, 0.3, time.Now())))

	n, err = store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecentNewestFirst(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(contribution([]string{"OLD"}, 0.1, base)))
	require.NoError(t, store.Append(contribution([]string{"MID"}, 0.2, base.Add(time.Hour))))
	require.NoError(t, store.Append(contribution([]string{"NEW"}, 0.3, base.Add(2*time.Hour))))

	recent, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, []string{"NEW"}, recent[0].FrameTypes)
	assert.Equal(t, []string{"MID"}, recent[1].FrameTypes)
	assert.Equal(t, base.Add(2*time.Hour), recent[0].ContributedAt)
}

func TestRoundTripFields(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(contribution([]string{"ECONOMIC", "TEMPORAL"}, 0.75, at)))

	recent, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	got := recent[0]
	assert.Equal(t, []string{"ECONOMIC", "TEMPORAL"}, got.FrameTypes)
	assert.Equal(t, []string{"AUTHORITY"}, got.MaskTypes)
	assert.Empty(t, got.SpellTypes)
	assert.Empty(t, got.PrisonTypes, "nil tag lists come back empty, not null")
	assert.Equal(t, 0.75, got.AwarenessScore)
	assert.Equal(t, domain.DepthStructure, got.SeeingDepth)
	assert.Equal(t, at, got.ContributedAt)
}

func TestRecentEmpty(t *testing.T) {
	store := newTestStore(t)
	recent, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
