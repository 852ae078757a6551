package file

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported list encodings
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Codec encodes a whole record list to a human-readable document
type Codec interface {
	// Name returns the format name ("json" or "yaml")
	Name() string

	// Marshal encodes v, pretty-printed
	Marshal(v interface{}) ([]byte, error)

	// Unmarshal decodes data into v
	Unmarshal(data []byte, v interface{}) error

	// EmptyList returns the explicit empty-list marker written on bootstrap
	EmptyList() []byte
}

// JSONCodec writes indented JSON, e.g. comments.json
type JSONCodec struct{}

func (JSONCodec) Name() string { return FormatJSON }

func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) EmptyList() []byte { return []byte("[]") }

// YAMLCodec writes a YAML sequence
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return FormatYAML }

func (YAMLCodec) Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLCodec) Unmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

func (YAMLCodec) EmptyList() []byte { return []byte("[]\n") }

// CodecFor returns the codec registered for format
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		return JSONCodec{}, nil
	case FormatYAML, "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported file format: %q", format)
	}
}

// DefaultExtension returns the file extension conventionally used for the codec
func DefaultExtension(c Codec) string {
	if c.Name() == FormatYAML {
		return ".yaml"
	}
	return ".json"
}
