package detect

import (
	"strings"

	"subtext/internal/domain"
	"subtext/internal/signal"
)

// MapPrisons reveals invisible constraints, with doors marked. Elegance is
// the scaled density: the more of a prison's vocabulary a text uses, the
// better the cage fits its prisoner.
func MapPrisons(tables *signal.Tables, text string) []domain.Prison {
	textLower := strings.ToLower(text)
	var results []ranked[domain.Prison]

	for _, entry := range tables.Prisons {
		matched := matchKeywords(textLower, entry.Keywords)
		if len(matched) == 0 {
			continue
		}

		d := density(matched, entry.Keywords)
		elegance := scaled(d, prisonScale)

		walls := make([]string, len(matched))
		for i, m := range matched {
			walls[i] = "Signal: '" + m + "'"
		}

		prison := domain.Prison{
			ID:                  domain.NewID(),
			Name:                titleCase(string(entry.Type)),
			Type:                entry.Type,
			Description:         entry.Mechanism,
			MissingChoices:      []string{"[What option would change everything if it appeared?]"},
			ForbiddenPaths:      []string{"[What path is not even conceived as possible?]"},
			UnimaginableFutures: []string{"[What future cannot be imagined from inside this prison?]"},
			InvisibleWalls:      walls,
			ExitConditions:      []string{entry.Door},
			Elegance:            elegance,
		}
		results = append(results, ranked[domain.Prison]{density: d, value: prison})
	}

	sortRanked(results)
	return unwrap(results)
}
