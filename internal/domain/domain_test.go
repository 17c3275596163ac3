package domain

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	hex12 := regexp.MustCompile(`^[0-9a-f]{12}$`)
	assert.Regexp(t, hex12, NewID())
	assert.NotEqual(t, NewID(), NewID())
}

func TestNewChainID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), NewChainID())
}

func TestAwarenessScoreEmpty(t *testing.T) {
	a := NewSystemAnalysis("Test")
	assert.Zero(t, a.AwarenessScore())
	assert.Equal(t, DepthSurface, a.SeeingDepth)
}

func TestAwarenessScoreComponentsCapped(t *testing.T) {
	a := NewSystemAnalysis("Test")
	for i := 0; i < 10; i++ {
		a.Frames = append(a.Frames, Frame{ID: NewID()})
	}
	// One maxed component out of six.
	assert.InDelta(t, 1.0/6.0, a.AwarenessScore(), 1e-9)
}

func TestAwarenessScoreFull(t *testing.T) {
	a := NewSystemAnalysis("Test")
	for i := 0; i < 3; i++ {
		a.Frames = append(a.Frames, Frame{})
		a.Masks = append(a.Masks, Mask{})
		a.Spells = append(a.Spells, Spell{})
		a.Prisons = append(a.Prisons, Prison{})
	}
	a.InfluenceEdges = make([]InfluenceEdge, 5)
	a.SelfExamination = &SelfExamination{ID: NewID()}

	assert.InDelta(t, 1.0, a.AwarenessScore(), 1e-9)
}

func TestAnonymizeStripsContent(t *testing.T) {
	a := NewSystemAnalysis("Secret Corp")
	a.Frames = []Frame{{ID: NewID(), Type: FrameEconomic, Name: "Economic Frame"}}
	a.Masks = []Mask{{ID: NewID(), Type: MaskAuthority, Actor: "The Board"}}
	a.Spells = []Spell{{ID: NewID(), Type: SpellUnity, Narrative: "sensitive"}}
	a.Prisons = []Prison{{ID: NewID(), Type: PrisonDebtStructure}}
	a.SeeingDepth = DepthPattern

	c := a.Anonymize()
	assert.Equal(t, []string{"ECONOMIC"}, c.FrameTypes)
	assert.Equal(t, []string{"AUTHORITY"}, c.MaskTypes)
	assert.Equal(t, []string{"UNITY_SPELL"}, c.SpellTypes)
	assert.Equal(t, []string{"DEBT_STRUCTURE"}, c.PrisonTypes)
	assert.Equal(t, DepthPattern, c.SeeingDepth)
	assert.False(t, c.ContributedAt.IsZero())

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Secret Corp")
	assert.NotContains(t, string(raw), "The Board")
	assert.NotContains(t, string(raw), "sensitive")
}

func TestSystemAnalysisMarshalIncludesAwareness(t *testing.T) {
	a := NewSystemAnalysis("Test")
	a.Frames = []Frame{{ID: NewID()}}

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	score, ok := decoded["awareness_score"].(float64)
	require.True(t, ok, "awareness_score is serialized as a number")
	assert.InDelta(t, a.AwarenessScore(), score, 1e-9)
	assert.Equal(t, "Test", decoded["system_name"])
	assert.Contains(t, decoded, "analysis_id")
}
