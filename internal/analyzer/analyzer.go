// Package analyzer composes the detectors, influence graph, crumb trail,
// and collective aggregator into one full-scan orchestrator.
package analyzer

import (
	"fmt"

	"go.uber.org/zap"

	"subtext/internal/collective"
	"subtext/internal/detect"
	"subtext/internal/domain"
	"subtext/internal/graph"
	"subtext/internal/introspect"
	"subtext/internal/scoring"
	"subtext/internal/signal"
	"subtext/internal/trail"
)

// Options configures an Analyzer. Zero values are all usable: no
// persistence, self-examination against the working directory.
type Options struct {
	// CollectivePath backs the collective aggregator. Empty keeps it
	// in-memory only.
	CollectivePath string

	// TrailPath is where LeaveTrail persists the crumb trail. Empty skips
	// persistence.
	TrailPath string

	// SourceDir is the source tree the self-examiner parses. Empty means
	// the working directory.
	SourceDir string
}

// Analyzer is the integration layer: it runs every module against a text
// and assembles the composite analysis.
type Analyzer struct {
	tables    *signal.Tables
	log       *zap.Logger
	bus       *EventBus
	trailPath string
	sourceDir string

	graph      *graph.InfluenceGraph
	trail      *trail.Trail
	collective *collective.Aggregator
}

// New creates an analyzer with fresh graph, trail, and collective state.
func New(tables *signal.Tables, opts Options, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	sourceDir := opts.SourceDir
	if sourceDir == "" {
		sourceDir = "."
	}
	return &Analyzer{
		tables:     tables,
		log:        log,
		bus:        NewEventBus(),
		trailPath:  opts.TrailPath,
		sourceDir:  sourceDir,
		graph:      graph.New(tables),
		trail:      trail.New(""),
		collective: collective.New(tables, opts.CollectivePath, log),
	}
}

// Bus exposes the event bus for subscribers.
func (a *Analyzer) Bus() *EventBus {
	return a.bus
}

// Graph exposes the influence graph for direct actor and edge entry.
func (a *Analyzer) Graph() *graph.InfluenceGraph {
	return a.graph
}

// Trail exposes the crumb trail store.
func (a *Analyzer) Trail() *trail.Trail {
	return a.trail
}

// Collective exposes the aggregator, mainly so an archive can be attached.
func (a *Analyzer) Collective() *collective.Aggregator {
	return a.collective
}

// Analyze performs a complete scan of one text: all four detectors,
// self-examination at recursive depth and deeper, crumb generation at
// structure depth and deeper, and an optional collective contribution.
// The analysis is always returned; the error reports persistence failure.
func (a *Analyzer) Analyze(text, systemName, context string, depth domain.SeeingDepth, contribute bool) (*domain.SystemAnalysis, error) {
	if systemName == "" {
		systemName = "Unknown System"
	}

	analysis := domain.NewSystemAnalysis(systemName)
	analysis.SeeingDepth = depth
	analysis.Frames = detect.DetectFrames(a.tables, text, context)
	analysis.Masks = a.graph.IdentifyMasks(text)
	analysis.Spells = detect.AnalyzeSpells(a.tables, text)
	analysis.Prisons = detect.MapPrisons(a.tables, text)

	if depth == domain.DepthRecursive || depth == domain.DepthIntegral {
		exam := introspect.Examine(a.sourceDir)
		analysis.SelfExamination = &exam
		a.bus.Publish(Event{Type: EventSelfExamined, Payload: exam.ID})
	}

	if depthReachesStructure(depth) {
		analysis.Crumbs = a.trail.GenerateFromAnalysis(analysis)
		if len(analysis.Crumbs) > 0 {
			a.bus.Publish(Event{Type: EventCrumbsGenerated, Payload: len(analysis.Crumbs)})
		}
	}

	var err error
	if contribute {
		if _, cerr := a.collective.Contribute(analysis); cerr != nil {
			err = fmt.Errorf("failed to contribute analysis: %w", cerr)
		} else {
			a.bus.Publish(Event{Type: EventContributionMade, Payload: analysis.ID})
		}
	}

	a.log.Debug("analysis completed",
		zap.String("system", systemName),
		zap.Int("frames", len(analysis.Frames)),
		zap.Int("masks", len(analysis.Masks)),
		zap.Int("spells", len(analysis.Spells)),
		zap.Int("prisons", len(analysis.Prisons)))
	a.bus.Publish(Event{Type: EventAnalysisCompleted, Payload: analysis.ID})

	return analysis, err
}

// CorpusReport is the composite result of scanning several texts.
type CorpusReport struct {
	CorpusSize        int                       `json:"corpus_size"`
	Analyses          []*domain.SystemAnalysis  `json:"individual_analyses"`
	FrameArchitecture detect.ArchitectureReport `json:"frame_architecture"`
	SpellPotency      scoring.PotencyReport     `json:"spell_potency"`
	CageScore         scoring.CageReport        `json:"cage_score"`
	CollectiveMap     collective.Map            `json:"collective_map"`
}

// ScanCorpus analyzes several texts and pools their findings: per-text
// analyses plus the cross-text frame architecture, aggregate spell potency,
// aggregate cage score, and the collective map.
func (a *Analyzer) ScanCorpus(texts []string, systemName string) (CorpusReport, error) {
	if systemName == "" {
		systemName = "Corpus"
	}

	var (
		analyses   []*domain.SystemAnalysis
		allSpells  []domain.Spell
		allPrisons []domain.Prison
		firstErr   error
	)
	for i, text := range texts {
		name := fmt.Sprintf("%s [%d/%d]", systemName, i+1, len(texts))
		analysis, err := a.Analyze(text, name, "", domain.DepthStructure, true)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		analyses = append(analyses, analysis)
		allSpells = append(allSpells, analysis.Spells...)
		allPrisons = append(allPrisons, analysis.Prisons...)
	}

	return CorpusReport{
		CorpusSize:        len(texts),
		Analyses:          analyses,
		FrameArchitecture: detect.MapArchitecture(a.tables, texts),
		SpellPotency:      scoring.ComputePotency(allSpells),
		CageScore:         scoring.ComputeCageScore(allPrisons),
		CollectiveMap:     a.collective.CollectiveMap(),
	}, firstErr
}

// LeaveTrail generates crumbs from an analysis and persists the trail when
// a trail path is configured.
func (a *Analyzer) LeaveTrail(analysis *domain.SystemAnalysis) ([]domain.Crumb, error) {
	crumbs := a.trail.GenerateFromAnalysis(analysis)
	if a.trailPath != "" {
		if err := a.trail.Persist(a.trailPath); err != nil {
			return crumbs, err
		}
	}
	return crumbs, nil
}

// ExamineSelf runs the recursive self-examiner.
func (a *Analyzer) ExamineSelf() domain.SelfExamination {
	return introspect.Examine(a.sourceDir)
}

// InfluenceNetwork returns the current state of the influence network.
func (a *Analyzer) InfluenceNetwork() graph.NetworkReport {
	return a.graph.UnmaskNetwork()
}

// CollectiveMap returns the collective insight map.
func (a *Analyzer) CollectiveMap() collective.Map {
	return a.collective.CollectiveMap()
}

func depthReachesStructure(depth domain.SeeingDepth) bool {
	switch depth {
	case domain.DepthStructure, domain.DepthGenerative, domain.DepthRecursive, domain.DepthIntegral:
		return true
	}
	return false
}
