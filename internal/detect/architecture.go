package detect

import (
	"fmt"
	"sort"

	"subtext/internal/signal"
)

// ArchitectureReport is the composite frame map built from a corpus.
type ArchitectureReport struct {
	TotalFrames   int            `json:"total_frames_detected"`
	Frequency     map[string]int `json:"frame_frequency"`
	CoOccurrence  map[string]int `json:"co_occurrence_matrix"`
	DominantFrame string         `json:"dominant_frame"`
	Density       float64        `json:"architectural_density"`
	Insight       string         `json:"insight"`
}

// MapArchitecture runs frame detection over every text and maps which frames
// co-occur and where the architecture is thickest. Frequency counts per-text
// presence of a subtype, not per-match counts. Co-occurrence pairs are
// unordered: the two tags are sorted before keying, so {A,B} and {B,A}
// collide on "A-B".
func MapArchitecture(tables *signal.Tables, texts []string) ArchitectureReport {
	frequency := make(map[string]int)
	coOccurrence := make(map[string]int)
	total := 0

	for _, text := range texts {
		frames := DetectFrames(tables, text, "")
		total += len(frames)

		tags := make([]string, len(frames))
		for i, f := range frames {
			tags[i] = string(f.Type)
			frequency[tags[i]]++
		}
		for i, a := range tags {
			for _, b := range tags[i+1:] {
				coOccurrence[pairKey(a, b)]++
			}
		}
	}

	dominant := mostFrequent(frequency, tables.FrameOrder())

	denom := len(texts)
	if denom < 1 {
		denom = 1
	}

	return ArchitectureReport{
		TotalFrames:   total,
		Frequency:     frequency,
		CoOccurrence:  coOccurrence,
		DominantFrame: dominant,
		Density:       float64(total) / float64(denom),
		Insight:       architectureInsight(dominant, frequency[dominant], coOccurrence),
	}
}

// pairKey normalizes an unordered tag pair to "A-B" with A <= B.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// mostFrequent returns the tag with the highest count, breaking ties by
// table order. Returns "" when nothing was counted.
func mostFrequent(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, tag := range order {
		if c := counts[tag]; c > bestCount {
			best = tag
			bestCount = c
		}
	}
	return best
}

// topPair returns the highest-count co-occurrence key. Ties break by sorted
// key order so the result is deterministic.
func topPair(coOccurrence map[string]int) (string, int) {
	keys := make([]string, 0, len(coOccurrence))
	for k := range coOccurrence {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := ""
	bestCount := 0
	for _, k := range keys {
		if coOccurrence[k] > bestCount {
			best = k
			bestCount = coOccurrence[k]
		}
	}
	return best, bestCount
}

func architectureInsight(dominant string, count int, coOccurrence map[string]int) string {
	if dominant == "" {
		return "No frames detected. This is itself significant — where there appear to be no frames, the framing may be total."
	}

	insight := fmt.Sprintf("The dominant frame is %s (appeared %d times). ", dominant, count)
	if pair, n := topPair(coOccurrence); pair != "" {
		insight += fmt.Sprintf("The strongest reinforcement pattern is %s (co-occurred %d times). ", pair, n)
		insight += "These frames likely reinforce each other — look for how one naturalizes the other."
	}
	return insight
}
