// Package detect implements the keyword-density detectors. Each detector is
// a pure function of (text, context, tables): it lower-cases the input,
// checks every configured keyword as a plain substring, and scores each
// subtype by the fraction of its keywords found.
package detect

import (
	"sort"
	"strings"
)

// Density scale factors. Even partial keyword matches matter, so density is
// scaled before capping at 1.0. Spells scale harder: narratives reinforce.
const (
	frameScale  = 2.0
	spellScale  = 2.5
	prisonScale = 2.0
)

// matchKeywords returns the configured keywords occurring anywhere in the
// lower-cased text, in keyword-list order. A keyword matches inside other
// words; matching is deliberately substring-based, not tokenized.
func matchKeywords(textLower string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// density is the fraction of a subtype's keywords present in the input.
func density(matched, keywords []string) float64 {
	return float64(len(matched)) / float64(len(keywords))
}

// scaled caps density*factor at 1.0.
func scaled(d, factor float64) float64 {
	s := d * factor
	if s > 1 {
		return 1
	}
	return s
}

// signalNotes formats matched keywords the way findings report them.
func signalNotes(matched []string) []string {
	notes := make([]string, len(matched))
	for i, m := range matched {
		notes[i] = "Signal detected: '" + m + "'"
	}
	return notes
}

// ranked pairs a finding with the density that orders it.
type ranked[T any] struct {
	density float64
	value   T
}

// sortRanked orders findings descending by density. The sort is stable:
// equal densities keep table order, so tie-breaks are reproducible.
func sortRanked[T any](rs []ranked[T]) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].density > rs[j].density
	})
}

func unwrap[T any](rs []ranked[T]) []T {
	out := make([]T, len(rs))
	for i, r := range rs {
		out[i] = r.value
	}
	return out
}
