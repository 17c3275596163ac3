package scoring

import (
	"fmt"

	"subtext/internal/domain"
)

// Confinement interpretations, most confined first.
const (
	CageTotal    = "total_confinement"
	CageHeavy    = "heavy_constraint"
	CageModerate = "moderate_constraint"
	CageLight    = "light_constraint"
	CageFree     = "mostly_free"
	CageOpen     = "open_field"
)

// firstStep is the constant guidance attached to every door.
const firstStep = "See the wall. That is always the first step. " +
	"You cannot walk through a wall you don't know is there."

// Door marks one prison's exits and how hard they are to use.
type Door struct {
	Prison           string            `json:"prison"`
	PrisonType       domain.PrisonType `json:"prison_type"`
	Elegance         float64           `json:"elegance"`
	Exits            []string          `json:"exits"`
	EscapeDifficulty float64           `json:"escape_difficulty"`
	FirstStep        string            `json:"first_step"`
}

// CageReport measures how confined a system is: aggregate elegance plus a
// bonus for interlocking prisons.
type CageReport struct {
	CageScore         float64 `json:"cage_score"`
	Interpretation    string  `json:"interpretation"`
	PrisonCount       int     `json:"prison_count"`
	AvgElegance       float64 `json:"avg_elegance,omitempty"`
	InterlockingBonus float64 `json:"interlocking_bonus,omitempty"`
	MostElegantPrison string  `json:"most_elegant_prison,omitempty"`
	Doors             []Door  `json:"doors,omitempty"`
	Insight           string  `json:"insight"`
}

// FindDoors extracts every prison's exit conditions and rates the escape
// difficulty. The more elegant the prison, the harder it is to leave.
func FindDoors(prisons []domain.Prison) []Door {
	doors := make([]Door, 0, len(prisons))
	for _, p := range prisons {
		doors = append(doors, Door{
			Prison:           p.Name,
			PrisonType:       p.Type,
			Elegance:         p.Elegance,
			Exits:            p.ExitConditions,
			EscapeDifficulty: round3(p.Elegance),
			FirstStep:        firstStep,
		})
	}
	return doors
}

// ComputeCageScore aggregates detected prisons. Prisons that co-occur are
// more constraining than isolated ones, so the count adds an interlocking
// bonus of 0.1 each, capped at 0.5.
func ComputeCageScore(prisons []domain.Prison) CageReport {
	if len(prisons) == 0 {
		return CageReport{
			Interpretation: CageOpen,
			Insight:        "No prisons detected. Freedom — or blindness. Which?",
		}
	}

	var sum float64
	mostElegant := 0
	for i, p := range prisons {
		sum += p.Elegance
		if p.Elegance > prisons[mostElegant].Elegance {
			mostElegant = i
		}
	}
	avg := sum / float64(len(prisons))

	bonus := float64(len(prisons)) * 0.1
	if bonus > 0.5 {
		bonus = 0.5
	}
	cage := avg + bonus
	if cage > 1 {
		cage = 1
	}

	name := prisons[mostElegant].Name
	return CageReport{
		CageScore:         round3(cage),
		Interpretation:    thresholdLabel(cage, CageTotal, CageHeavy, CageModerate, CageLight, CageFree),
		PrisonCount:       len(prisons),
		AvgElegance:       round3(avg),
		InterlockingBonus: round3(bonus),
		MostElegantPrison: name,
		Doors:             FindDoors(prisons),
		Insight: fmt.Sprintf("Cage score: %.2f. %d interlocking constraints detected. "+
			"The most elegant prison is '%s' — elegant prisons are loved by their inmates.",
			cage, len(prisons), name),
	}
}
