package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	X     int32    `json:"x"`
	Z     int32    `json:"z"`
	Score int      `json:"score"`
	Cells []uint32 `json:"cells"`
}

type label string

func (l label) MarshalText() ([]byte, error) { return []byte("label:" + string(l)), nil }

func (l *label) UnmarshalText(b []byte) error {
	s, ok := strings.CutPrefix(string(b), "label:")
	if !ok {
		return errors.New("missing prefix")
	}
	*l = label(s)
	return nil
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "text"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default.Name(), c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestJSONCodecsAgree(t *testing.T) {
	in := sample{X: -12, Z: 40, Score: 7, Cells: []uint32{1, 5, 9}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data := MustMarshal(c, in)

			var out sample
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
			assert.Equal(t, ".json", Extension(c))
		})
	}
}

func TestText(t *testing.T) {
	c := Text{}
	data, err := c.Marshal(label("top"))
	require.NoError(t, err)
	assert.Equal(t, "label:top", string(data))

	var l label
	require.NoError(t, c.Unmarshal(data, &l))
	assert.Equal(t, label("top"), l)
	assert.Equal(t, ".txt", Extension(c))

	_, err = c.Marshal(sample{})
	require.Error(t, err)
	require.Error(t, c.Unmarshal(data, &sample{}))
}

func TestCompression(t *testing.T) {
	payload := bytes.Repeat([]byte("TOP 1: chunk [3, -7] | slime chunks: 42\n"), 200)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			packed, err := c.Compress(payload)
			require.NoError(t, err)
			if c != CompressionNone {
				assert.Less(t, len(packed), len(payload))
			}

			out, err := c.Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, payload, out)

			parsed, err := ParseCompression(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		})
	}

	assert.Equal(t, ".zst", CompressionZstd.Extension())
	assert.Equal(t, ".lz4", CompressionLZ4.Extension())
	assert.Equal(t, "", CompressionNone.Extension())

	_, err := ParseCompression("brotli")
	require.Error(t, err)

	_, err = CompressionZstd.Decompress([]byte("not a frame"))
	require.Error(t, err)
}
