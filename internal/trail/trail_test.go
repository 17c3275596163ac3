package trail

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtext/internal/domain"
)

func TestDropCrumbDefaults(t *testing.T) {
	tr := New("")
	crumb := tr.DropCrumb("look closer", domain.CrumbQuestion, "test", "", "", "")

	assert.NotEmpty(t, crumb.ID)
	assert.Equal(t, domain.VisibilityHidden, crumb.Visibility)
	assert.Equal(t, "seekers", crumb.TargetAudience)
	assert.Equal(t, tr.ID(), crumb.ChainID, "empty chain id falls back to the store id")
	assert.False(t, crumb.CreatedAt.IsZero())
}

func TestFollowChain(t *testing.T) {
	tr := New("")
	a := tr.DropCrumb("first", domain.CrumbQuestion, "", "", "", "chain-1")
	tr.DropCrumb("other", domain.CrumbSignal, "", "", "", "chain-2")
	b := tr.DropCrumb("second", domain.CrumbPattern, "", "", "", "chain-1")

	got := tr.FollowChain("chain-1")
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID, "store order preserved")
	assert.Equal(t, b.ID, got[1].ID)

	assert.Empty(t, tr.FollowChain("no-such-chain"))
}

func analysisFixture() *domain.SystemAnalysis {
	analysis := domain.NewSystemAnalysis("Test System")
	analysis.Frames = []domain.Frame{{
		ID:                 domain.NewID(),
		Name:               "Economic Frame",
		Type:               domain.FrameEconomic,
		ForbiddenQuestions: []string{"What is being valued?", "What is discarded?"},
	}}
	analysis.Masks = []domain.Mask{{
		ID:             domain.NewID(),
		Type:           domain.MaskAuthority,
		FormalRole:     "leadership",
		ActualFunction: "agenda-setting",
	}}
	analysis.Spells = []domain.Spell{{
		ID:               domain.NewID(),
		Name:             "Fear Narrative",
		Type:             domain.SpellFearNarrative,
		CounterNarrative: "Who benefits from this fear?",
	}}
	analysis.Prisons = []domain.Prison{{
		ID:             domain.NewID(),
		Name:           "Temporal Trap",
		Type:           domain.PrisonTemporalTrap,
		ExitConditions: []string{"stop long enough to see"},
	}}
	return analysis
}

func TestGenerateFromAnalysis(t *testing.T) {
	tr := New("")
	crumbs := tr.GenerateFromAnalysis(analysisFixture())

	// 2 forbidden questions + 1 mask + 1 spell + 1 exit condition + bridge.
	require.Len(t, crumbs, 6)

	byType := make(map[domain.CrumbType]int)
	for _, c := range crumbs {
		byType[c.Type]++
	}
	assert.Equal(t, 2, byType[domain.CrumbQuestion])
	assert.Equal(t, 1, byType[domain.CrumbPattern])
	assert.Equal(t, 1, byType[domain.CrumbParadox])
	assert.Equal(t, 1, byType[domain.CrumbTrail])
	assert.Equal(t, 1, byType[domain.CrumbBridge])

	// All crumbs share one fresh chain, distinct from the store id.
	chain := crumbs[0].ChainID
	assert.NotEqual(t, tr.ID(), chain)
	for _, c := range crumbs {
		assert.Equal(t, chain, c.ChainID)
	}
	assert.Len(t, tr.FollowChain(chain), 6)

	bridge := crumbs[len(crumbs)-1]
	assert.Equal(t, domain.CrumbBridge, bridge.Type)
	assert.Contains(t, bridge.Content, "1 visible frames")
	assert.Contains(t, bridge.Content, "The first step is always the same: see.")
}

func TestGenerateFromAnalysisEmpty(t *testing.T) {
	tr := New("")
	crumbs := tr.GenerateFromAnalysis(domain.NewSystemAnalysis("Empty"))
	assert.Empty(t, crumbs, "no findings means no crumbs, not even a bridge")
}

func TestEncodeCrumbDeterministic(t *testing.T) {
	tr := New("fixed-trail-id")
	crumb := tr.DropCrumb("the content", domain.CrumbSignal, "", "", "", "")

	m1 := tr.EncodeCrumb(crumb, "")
	m2 := tr.EncodeCrumb(crumb, "")
	assert.Equal(t, m1, m2)

	parts := strings.Split(m1, ":")
	require.Len(t, parts, 3)
	assert.Equal(t, "sk", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 16)
	assert.NotContains(t, m1, "the content", "markers never leak content")

	assert.NotEqual(t, m1, tr.EncodeCrumb(crumb, "other-key"), "marker depends on the key")
}

func TestDecodeTrail(t *testing.T) {
	tr := New("")
	a := tr.DropCrumb("alpha", domain.CrumbQuestion, "", "", "", "")
	tr.DropCrumb("beta", domain.CrumbSignal, "", "", "", "")

	decoded := tr.DecodeTrail([]string{tr.EncodeCrumb(a, ""), "sk:deadbeef:0123456789abcdef"})
	require.Len(t, decoded, 1)
	assert.Equal(t, a.ID, decoded[0].ID)

	assert.Empty(t, tr.DecodeTrail(nil))
}

func TestPersistLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.json")

	tr := New("")
	a := tr.DropCrumb("alpha", domain.CrumbQuestion, "ctx", domain.VisibilityPublic, "everyone", "chain-1")
	tr.DropCrumb("beta", domain.CrumbSignal, "", "", "", "")
	require.NoError(t, tr.Persist(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, tr.ID(), loaded.ID())
	require.Len(t, loaded.Crumbs(), 2)

	got := loaded.FollowChain("chain-1")
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, "alpha", got[0].Content)
	assert.Equal(t, "ctx", got[0].Context)
	assert.Equal(t, domain.VisibilityPublic, got[0].Visibility)
	assert.Equal(t, "everyone", got[0].TargetAudience)

	// Markers survive the round trip because ids and content do.
	assert.Equal(t, tr.EncodeCrumb(a, ""), loaded.EncodeCrumb(got[0], ""))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
