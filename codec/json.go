package codec

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// Default is the report codec used when none is configured.
var Default Codec = GoJSON{}

const indent = "  "

// GoJSON encodes indented JSON with github.com/goccy/go-json.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.MarshalIndent(v, "", indent) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) Name() string                       { return "go-json" }

// JSON encodes indented JSON with encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.MarshalIndent(v, "", indent) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSON) Name() string                       { return "json" }
