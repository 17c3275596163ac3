package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

func TestForPathSelection(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"snapshot.json", "json"},
		{"snapshot.yaml", "yaml"},
		{"snapshot.yml", "yaml"},
		{"SNAPSHOT.YAML", "yaml"},
		{"snapshot", "json"},
		{"snapshot.txt", "json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForPath(tt.path).Format(), "path %q", tt.path)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := sample{Name: "trail", Score: 0.75}

	c := &JSONCodec{}
	require.NoError(t, c.Encode(&buf, in))
	assert.Contains(t, buf.String(), "  \"name\"", "output is indented")

	var out sample
	require.NoError(t, c.Decode(&buf, &out))
	assert.Equal(t, in, out)
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := sample{Name: "trail", Score: 0.75}

	c := &YAMLCodec{}
	require.NoError(t, c.Encode(&buf, in))

	var out sample
	require.NoError(t, c.Decode(&buf, &out))
	assert.Equal(t, in, out)
}

func TestDecodeGarbage(t *testing.T) {
	var out sample
	err := (&JSONCodec{}).Decode(bytes.NewBufferString("{nope"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}
