package signal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsShape(t *testing.T) {
	tables := Defaults()

	assert.Len(t, tables.Frames, 8)
	assert.Len(t, tables.Masks, 8)
	assert.Len(t, tables.Spells, 8)
	assert.Len(t, tables.Prisons, 8)
	require.NoError(t, tables.Validate())
}

func TestDefaultsKeywordsLowerCase(t *testing.T) {
	tables := Defaults()
	for _, e := range tables.Frames {
		for _, kw := range e.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw)
		}
	}
}

func TestDefaultsFreshCopy(t *testing.T) {
	a := Defaults()
	a.Frames[0].Keywords[0] = "mutated"
	assert.NotEqual(t, "mutated", Defaults().Frames[0].Keywords[0])
}

func TestOrderAccessors(t *testing.T) {
	tables := Defaults()
	order := tables.FrameOrder()
	require.Len(t, order, len(tables.Frames))
	assert.Equal(t, "NORMATIVE", order[0])
	assert.Equal(t, "MYTHOLOGICAL", order[len(order)-1])
}

const minimalTables = `
frames:
  - type: CUSTOM
    keywords: ["alpha", "beta"]
    question: q
    reveals: r
    antidote: a
masks:
  - type: CUSTOM_MASK
    keywords: ["gamma"]
    behind_the_mask: b
    slip_indicators: ["s"]
spells:
  - type: CUSTOM_SPELL
    keywords: ["delta"]
    emotional_hook: e
    hidden_function: h
    breaking_question: bq
prisons:
  - type: CUSTOM_PRISON
    keywords: ["epsilon"]
    mechanism: m
    door: d
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalTables), 0644))

	tables, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, tables.Frames, 1)
	assert.Equal(t, "CUSTOM", string(tables.Frames[0].Type))
	assert.Equal(t, []string{"alpha", "beta"}, tables.Frames[0].Keywords)
	assert.Equal(t, "q", tables.Frames[0].Question)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s string) string
		wantErr string
	}{
		{
			name:    "empty keyword list",
			mutate:  func(s string) string { return strings.Replace(s, `["epsilon"]`, "[]", 1) },
			wantErr: "no keywords",
		},
		{
			name:    "upper case keyword",
			mutate:  func(s string) string { return strings.Replace(s, `"alpha"`, `"ALPHA"`, 1) },
			wantErr: "lower case",
		},
		{
			name: "duplicate tag",
			mutate: func(s string) string {
				dup := `
  - type: CUSTOM
    keywords: ["zeta"]
    question: q2
    reveals: r2
    antidote: a2
masks:`
				return strings.Replace(s, "\nmasks:", dup, 1)
			},
			wantErr: "duplicate tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "signals.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.mutate(minimalTables)), 0644))

			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEmptyTable(t *testing.T) {
	tables := Defaults()
	tables.Spells = nil
	err := tables.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spells table is empty")
}
