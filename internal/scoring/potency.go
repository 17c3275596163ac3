// Package scoring reduces detector output to aggregate reports: spell
// potency with an entropy measure over the narrative mix, and the cage
// score for detected prisons. All functions are pure; empty input returns
// the documented sentinel report, never an error.
package scoring

import (
	"fmt"
	"math"

	"subtext/internal/domain"
)

// Enchantment levels, strongest first.
const (
	LevelTotal    = "total_enchantment"
	LevelHeavy    = "heavy_enchantment"
	LevelModerate = "moderate_enchantment"
	LevelLight    = "light_enchantment"
	LevelMinimal  = "minimal_enchantment"
	LevelClear    = "clear"
)

// PotencyReport is the aggregate enchantment level of a narrative
// environment. A high aggregate means many reinforcing stories creating a
// thick reality-distortion field.
type PotencyReport struct {
	Aggregate float64            `json:"aggregate_potency"`
	Dominant  *domain.Spell      `json:"dominant_spell"`
	Count     int                `json:"spell_count"`
	Diversity float64            `json:"spell_diversity"`
	Level     string             `json:"enchantment_level"`
	Breakdown map[string]float64 `json:"spell_breakdown,omitempty"`
	Insight   string             `json:"insight"`
}

// ComputePotency aggregates a set of detected spells.
func ComputePotency(spells []domain.Spell) PotencyReport {
	if len(spells) == 0 {
		return PotencyReport{
			Level:   LevelClear,
			Insight: "No active spells detected. Either the space is clear, or the enchantment is too deep to see.",
		}
	}

	var sum float64
	dominant := 0
	for i, s := range spells {
		sum += s.Potency
		if s.Potency > spells[dominant].Potency {
			dominant = i
		}
	}
	aggregate := sum / float64(len(spells))

	typeCounts := make(map[string]int)
	breakdown := make(map[string]float64, len(spells))
	for _, s := range spells {
		typeCounts[string(s.Type)]++
		breakdown[string(s.Type)] = s.Potency
	}
	entropy := shannonEntropy(typeCounts, len(spells))

	dom := spells[dominant]
	insight := fmt.Sprintf("Dominant narrative: %s (potency %.2f). Narrative diversity: %.2f bits. ",
		dom.Name, dom.Potency, entropy)
	if entropy > 1.5 {
		insight += "High diversity means multiple reinforcing stories. "
	}
	insight += "Counter-question: " + dom.CounterNarrative

	return PotencyReport{
		Aggregate: round3(aggregate),
		Dominant:  &dom,
		Count:     len(spells),
		Diversity: round3(entropy),
		Level:     thresholdLabel(aggregate, LevelTotal, LevelHeavy, LevelModerate, LevelLight, LevelMinimal),
		Breakdown: breakdown,
		Insight:   insight,
	}
}

// shannonEntropy is the base-2 entropy of the subtype distribution. A single
// subtype yields exactly 0; N equally frequent subtypes yield log2(N).
func shannonEntropy(counts map[string]int, total int) float64 {
	var entropy float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// thresholdLabel maps a score in [0,1] onto five ordinal labels at the fixed
// thresholds 0.8 / 0.6 / 0.4 / 0.2.
func thresholdLabel(score float64, top, high, mid, low, bottom string) string {
	switch {
	case score >= 0.8:
		return top
	case score >= 0.6:
		return high
	case score >= 0.4:
		return mid
	case score >= 0.2:
		return low
	default:
		return bottom
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
