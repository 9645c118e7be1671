package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

// MarshalJSON encodes the sidebar map as a JSON object in declaration order.
func (m SidebarMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range m.routes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Prefix)
		if err != nil {
			return nil, err
		}
		sections := r.Sections
		if sections == nil {
			sections = []SidebarSection{}
		}
		val, err := json.Marshal(sections)
		if err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", r.Prefix, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping key order and duplicate keys.
func (m *SidebarMap) UnmarshalJSON(data []byte) error {
	m.routes = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	// ObjectEach hands over keys already unescaped.
	return jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		prefix := string(key)
		var sections []SidebarSection
		switch dataType {
		case jsonparser.Null:
		case jsonparser.Array:
			dec := json.NewDecoder(bytes.NewReader(value))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&sections); err != nil {
				return fmt.Errorf("sidebar %q: %w", prefix, err)
			}
		default:
			return fmt.Errorf("sidebar %q: expected an array of sections, got %s", prefix, dataType)
		}
		m.routes = append(m.routes, SidebarRoute{Prefix: prefix, Sections: sections})
		return nil
	})
}

// MarshalJSON encodes the config's definition.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.def)
}

// EncodeJSON renders the config as indented JSON.
func (c *Config) EncodeJSON() ([]byte, error) {
	raw, err := json.Marshal(c.def)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryExport, "encode json").Build()
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryExport, "indent json").Build()
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DecodeJSON parses and validates a JSON document.
func DecodeJSON(data []byte) (*Config, error) {
	var def Definition
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "decode json").UserAction().Build()
	}
	return New(def)
}
