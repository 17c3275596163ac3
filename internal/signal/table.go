// Package signal holds the static keyword taxonomies the detectors match
// against. Tables are injected configuration: the embedded defaults cover
// the standard vocabulary, and a YAML file of the same shape can replace
// them wholesale.
//
// Entries are kept in slices, never maps. Every argmax and most-frequent
// selection downstream breaks ties by table order, so insertion order is
// part of the contract.
package signal

import "subtext/internal/domain"

// FrameEntry maps one frame subtype to its keywords and prose fields.
type FrameEntry struct {
	Type     domain.FrameType `yaml:"type"`
	Keywords []string         `yaml:"keywords"`
	Question string           `yaml:"question"`
	Reveals  string           `yaml:"reveals"`
	Antidote string           `yaml:"antidote"`
}

// MaskEntry maps one mask subtype to its keywords and prose fields.
type MaskEntry struct {
	Type           domain.MaskType `yaml:"type"`
	Keywords       []string        `yaml:"keywords"`
	BehindTheMask  string          `yaml:"behind_the_mask"`
	SlipIndicators []string        `yaml:"slip_indicators"`
}

// SpellEntry maps one spell subtype to its keywords and prose fields.
type SpellEntry struct {
	Type             domain.SpellType `yaml:"type"`
	Keywords         []string         `yaml:"keywords"`
	EmotionalHook    string           `yaml:"emotional_hook"`
	HiddenFunction   string           `yaml:"hidden_function"`
	BreakingQuestion string           `yaml:"breaking_question"`
}

// PrisonEntry maps one prison subtype to its keywords and prose fields.
type PrisonEntry struct {
	Type      domain.PrisonType `yaml:"type"`
	Keywords  []string          `yaml:"keywords"`
	Mechanism string            `yaml:"mechanism"`
	Door      string            `yaml:"door"`
}

// Tables bundles the four taxonomies one scanner instance works with.
type Tables struct {
	Frames  []FrameEntry  `yaml:"frames"`
	Masks   []MaskEntry   `yaml:"masks"`
	Spells  []SpellEntry  `yaml:"spells"`
	Prisons []PrisonEntry `yaml:"prisons"`
}

// FrameOrder returns the frame subtype tags in table order.
func (t *Tables) FrameOrder() []string {
	tags := make([]string, 0, len(t.Frames))
	for _, e := range t.Frames {
		tags = append(tags, string(e.Type))
	}
	return tags
}

// MaskOrder returns the mask subtype tags in table order.
func (t *Tables) MaskOrder() []string {
	tags := make([]string, 0, len(t.Masks))
	for _, e := range t.Masks {
		tags = append(tags, string(e.Type))
	}
	return tags
}

// SpellOrder returns the spell subtype tags in table order.
func (t *Tables) SpellOrder() []string {
	tags := make([]string, 0, len(t.Spells))
	for _, e := range t.Spells {
		tags = append(tags, string(e.Type))
	}
	return tags
}

// PrisonOrder returns the prison subtype tags in table order.
func (t *Tables) PrisonOrder() []string {
	tags := make([]string, 0, len(t.Prisons))
	for _, e := range t.Prisons {
		tags = append(tags, string(e.Type))
	}
	return tags
}
