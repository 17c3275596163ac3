package codec

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONCodec handles JSON snapshots.
type JSONCodec struct{}

// Format returns the codec format identifier.
func (c *JSONCodec) Format() string {
	return "json"
}

// Encode writes v as indented JSON.
func (c *JSONCodec) Encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Decode reads JSON into v.
func (c *JSONCodec) Decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}
