package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format decodes one serialized backing format into structured data.
type Format struct {
	Name   string
	Ext    string
	Decode func(data []byte) (map[string]any, error)
}

// JSON is the default backing format: an object whose leaves are strings or
// arrays of strings.
var JSON = Format{
	Name: "json",
	Ext:  ".json",
	Decode: func(data []byte) (map[string]any, error) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		var out map[string]any
		if err := dec.Decode(&out); err != nil {
			return nil, err
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errTrailingData
		}
		return out, nil
	},
}

var errTrailingData = errors.New("unexpected data after top-level value")

// TOML decodes go-i18n style message files.
var TOML = Format{
	Name: "toml",
	Ext:  ".toml",
	Decode: func(data []byte) (map[string]any, error) {
		var out map[string]any
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	},
}

// YAML decodes YAML documents with a mapping at the root.
var YAML = Format{
	Name: "yaml",
	Ext:  ".yaml",
	Decode: func(data []byte) (map[string]any, error) {
		var out map[string]any
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	},
}

// FormatByName returns the built-in format registered under name
// ("json", "toml", "yaml" or "yml").
func FormatByName(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Parse decodes data with the format and flattens it. Decoding failures and
// empty documents are reported as ErrMalformed.
func (f Format) Parse(data []byte) (*Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty %s document", ErrMalformed, f.Name)
	}

	decoded, err := f.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f.Name, err)
	}
	return Flatten(decoded)
}
