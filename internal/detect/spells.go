package detect

import (
	"strings"

	"subtext/internal/domain"
	"subtext/internal/signal"
)

// AnalyzeSpells examines narratives for enchantment. Potency is the scaled
// density (factor 2.5, capped at 1); reach is the raw density. Results are
// ranked by potency, which orders the same way as density.
func AnalyzeSpells(tables *signal.Tables, text string) []domain.Spell {
	textLower := strings.ToLower(text)
	var results []ranked[domain.Spell]

	for _, entry := range tables.Spells {
		matched := matchKeywords(textLower, entry.Keywords)
		if len(matched) == 0 {
			continue
		}

		d := density(matched, entry.Keywords)
		potency := scaled(d, spellScale)

		spell := domain.Spell{
			ID:               domain.NewID(),
			Name:             titleCase(string(entry.Type)),
			Type:             entry.Type,
			Narrative:        "Detected narrative signals: " + strings.Join(matched, ", "),
			EmotionalPayload: entry.EmotionalHook,
			HiddenAssumption: entry.HiddenFunction,
			Erasure:          "[Requires deeper analysis — what is NOT being said?]",
			CuiBono:          "[Follow the benefit — who gains from this belief?]",
			CounterNarrative: entry.BreakingQuestion,
			Potency:          potency,
			Reach:            d,
		}
		results = append(results, ranked[domain.Spell]{density: d, value: spell})
	}

	sortRanked(results)
	return unwrap(results)
}
