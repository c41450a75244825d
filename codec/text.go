package codec

import (
	"encoding"
	"fmt"
)

// Text encodes values through encoding.TextMarshaler.
type Text struct{}

// Marshal calls v.MarshalText.
func (Text) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.TextMarshaler)
	if !ok {
		return nil, fmt.Errorf("codec text: %T does not implement encoding.TextMarshaler", v)
	}
	return m.MarshalText()
}

// Unmarshal calls v.UnmarshalText.
func (Text) Unmarshal(data []byte, v any) error {
	u, ok := v.(encoding.TextUnmarshaler)
	if !ok {
		return fmt.Errorf("codec text: %T does not implement encoding.TextUnmarshaler", v)
	}
	return u.UnmarshalText(data)
}

// Name returns the unique name of the codec ("text").
func (Text) Name() string { return "text" }
