package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"subtext/internal/domain"
	"subtext/internal/introspect"
)

func finding(n int) []domain.Frame {
	frames := make([]domain.Frame, n)
	for i := range frames {
		frames[i] = domain.Frame{ID: domain.NewID(), Type: domain.FrameNormative}
	}
	return frames
}

func TestAssessSeeingDepthLadder(t *testing.T) {
	a := newTestAnalyzer(t)
	exam := introspect.Examine(".")

	tests := []struct {
		name  string
		setup func(*domain.SystemAnalysis)
		want  domain.SeeingDepth
	}{
		{
			name:  "surface when nothing detected",
			setup: func(an *domain.SystemAnalysis) {},
			want:  domain.DepthSurface,
		},
		{
			name: "pattern with a single frame",
			setup: func(an *domain.SystemAnalysis) {
				an.Frames = finding(1)
			},
			want: domain.DepthPattern,
		},
		{
			name: "structure when all categories are populated",
			setup: func(an *domain.SystemAnalysis) {
				an.Frames = finding(3)
				an.Spells = []domain.Spell{{ID: "s1"}, {ID: "s2"}}
				an.Prisons = []domain.Prison{{ID: "p1"}, {ID: "p2"}}
			},
			want: domain.DepthStructure,
		},
		{
			name: "generative needs crumbs and awareness above 0.6",
			setup: func(an *domain.SystemAnalysis) {
				an.Frames = finding(3)
				an.Masks = []domain.Mask{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}
				an.Spells = []domain.Spell{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
				an.Prisons = []domain.Prison{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
				an.Crumbs = []domain.Crumb{{ID: "c1"}}
			},
			want: domain.DepthGenerative,
		},
		{
			name: "recursive with a self-examination",
			setup: func(an *domain.SystemAnalysis) {
				an.SelfExamination = &exam
			},
			want: domain.DepthRecursive,
		},
		{
			name: "integral with self-examination and high awareness",
			setup: func(an *domain.SystemAnalysis) {
				an.Frames = finding(3)
				an.Masks = []domain.Mask{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}
				an.Spells = []domain.Spell{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
				an.Prisons = []domain.Prison{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
				an.InfluenceEdges = make([]domain.InfluenceEdge, 5)
				an.SelfExamination = &exam
			},
			want: domain.DepthIntegral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := domain.NewSystemAnalysis("Test")
			tt.setup(analysis)

			assessment := a.AssessSeeingDepth(analysis)
			assert.Equal(t, tt.want, assessment.Depth)
			assert.NotEmpty(t, assessment.Interpretation)
			assert.InDelta(t, analysis.AwarenessScore(), assessment.AwarenessScore, 1e-3)
		})
	}
}

func TestAssessSeeingDepthCounts(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis := domain.NewSystemAnalysis("Test")
	analysis.Frames = finding(2)
	analysis.Crumbs = []domain.Crumb{{ID: "c1"}, {ID: "c2"}}

	assessment := a.AssessSeeingDepth(analysis)
	assert.Equal(t, 2, assessment.FramesDetected)
	assert.Equal(t, 2, assessment.CrumbsGenerated)
	assert.False(t, assessment.SelfExamined)
}
