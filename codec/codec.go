// Package codec encodes search reports and optionally compresses them.
//
// Codecs are selected by their stable name from configuration. JSON codecs
// produce the machine-readable report; Text renders any value implementing
// encoding.TextMarshaler.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json", "":
		return GoJSON{}, true
	case "text":
		return Text{}, true
	default:
		return nil, false
	}
}

// Extension returns the file extension for data written by c.
func Extension(c Codec) string {
	if _, ok := c.(Text); ok {
		return ".txt"
	}
	return ".json"
}

// MustMarshal is a helper for tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
