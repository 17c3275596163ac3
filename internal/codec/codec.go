// Package codec serializes store snapshots. JSON is the wire-compatible
// default; YAML is selected by file extension for snapshots meant to be
// hand-edited.
package codec

import (
	"io"
	"path/filepath"
	"strings"
)

// Codec encodes and decodes one snapshot format.
type Codec interface {
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
	Format() string
}

// ForPath picks a codec by file extension: .yaml/.yml get YAML, everything
// else gets JSON.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return &YAMLCodec{}
	default:
		return &JSONCodec{}
	}
}
