package signal

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a replacement vocabulary from a YAML file of the same shape
// as Tables. The loaded tables are validated; an invalid file is rejected
// rather than silently producing detectors that can never match.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signal tables: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse signal tables: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signal tables %s: %w", path, err)
	}
	return &t, nil
}

// Validate checks that every table is non-empty, every entry has at least
// one keyword, keywords are lower case, and subtype tags are unique within
// their table.
func (t *Tables) Validate() error {
	check := func(table string, tags []string, keywords [][]string) error {
		if len(tags) == 0 {
			return fmt.Errorf("%s table is empty", table)
		}
		seen := make(map[string]bool, len(tags))
		for i, tag := range tags {
			if tag == "" {
				return fmt.Errorf("%s entry %d has no type tag", table, i)
			}
			if seen[tag] {
				return fmt.Errorf("%s table has duplicate tag %s", table, tag)
			}
			seen[tag] = true
			if len(keywords[i]) == 0 {
				return fmt.Errorf("%s entry %s has no keywords", table, tag)
			}
			for _, kw := range keywords[i] {
				if kw == "" {
					return fmt.Errorf("%s entry %s has an empty keyword", table, tag)
				}
				if kw != strings.ToLower(kw) {
					return fmt.Errorf("%s entry %s keyword %q must be lower case", table, tag, kw)
				}
			}
		}
		return nil
	}

	frameKw := make([][]string, len(t.Frames))
	for i, e := range t.Frames {
		frameKw[i] = e.Keywords
	}
	if err := check("frames", t.FrameOrder(), frameKw); err != nil {
		return err
	}

	maskKw := make([][]string, len(t.Masks))
	for i, e := range t.Masks {
		maskKw[i] = e.Keywords
	}
	if err := check("masks", t.MaskOrder(), maskKw); err != nil {
		return err
	}

	spellKw := make([][]string, len(t.Spells))
	for i, e := range t.Spells {
		spellKw[i] = e.Keywords
	}
	if err := check("spells", t.SpellOrder(), spellKw); err != nil {
		return err
	}

	prisonKw := make([][]string, len(t.Prisons))
	for i, e := range t.Prisons {
		prisonKw[i] = e.Keywords
	}
	return check("prisons", t.PrisonOrder(), prisonKw)
}
