package detect

import (
	"strings"
	"time"

	"subtext/internal/domain"
	"subtext/internal/signal"
)

// DetectFrames scans text for invisible architecture. The auxiliary context
// is folded into the scan alongside the text itself. Results are ranked by
// signal density; no keywords found means an empty slice, not an error.
func DetectFrames(tables *signal.Tables, text, context string) []domain.Frame {
	textLower := strings.ToLower(text) + " " + strings.ToLower(context)
	var results []ranked[domain.Frame]

	for _, entry := range tables.Frames {
		matched := matchKeywords(textLower, entry.Keywords)
		if len(matched) == 0 {
			continue
		}

		d := density(matched, entry.Keywords)
		strength := scaled(d, frameScale)

		frame := domain.Frame{
			ID:                     domain.NewID(),
			Name:                   frameName(entry.Type),
			Type:                   entry.Type,
			Description:            entry.Reveals,
			UnspokenRules:          signalNotes(matched),
			NaturalizedAssumptions: []string{entry.Reveals},
			ForbiddenQuestions:     []string{entry.Question},
			EdgesOfThinkable:       []string{entry.Antidote},
			Strength:               strength,
			// The stronger the frame, the less visible it is.
			Visibility: 1 - strength,
			DetectedAt: time.Now().UTC(),
		}
		results = append(results, ranked[domain.Frame]{density: d, value: frame})
	}

	sortRanked(results)
	return unwrap(results)
}

// frameName renders a subtype tag as a display name, e.g. "Normative Frame".
func frameName(t domain.FrameType) string {
	return titleCase(string(t)) + " Frame"
}

// titleCase turns an UPPER_SNAKE tag into Title Case words.
func titleCase(tag string) string {
	words := strings.Split(strings.ToLower(tag), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
