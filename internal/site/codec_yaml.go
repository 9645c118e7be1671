package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

// MarshalYAML encodes the sidebar map as a YAML mapping in declaration order.
func (m SidebarMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, r := range m.routes {
		val := &yaml.Node{}
		if err := val.Encode(r.Sections); err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", r.Prefix, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Prefix},
			val,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping keeping key order. Duplicate keys are
// preserved for validation to reject.
func (m *SidebarMap) UnmarshalYAML(value *yaml.Node) error {
	m.routes = nil
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sidebar must be a mapping of prefix to sections", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		sections, err := decodeSections(val)
		if err != nil {
			return fmt.Errorf("sidebar %q: %w", key.Value, err)
		}
		m.routes = append(m.routes, SidebarRoute{Prefix: key.Value, Sections: sections})
	}
	return nil
}

// decodeSections re-encodes the node so the section list is decoded with
// KnownFields; Node.Decode would ignore misspelled keys.
func decodeSections(node *yaml.Node) ([]SidebarSection, error) {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, err
	}
	var sections []SidebarSection
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&sections); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return sections, nil
}

// MarshalYAML encodes the config's definition.
func (c *Config) MarshalYAML() (any, error) {
	return c.def, nil
}

// EncodeYAML renders the config as a YAML document.
func (c *Config) EncodeYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.def); err != nil {
		_ = enc.Close()
		return nil, ferrors.WrapError(err, ferrors.CategoryExport, "encode yaml").Build()
	}
	if err := enc.Close(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryExport, "encode yaml").Build()
	}
	return buf.Bytes(), nil
}

// DecodeYAML parses and validates a YAML document produced by EncodeYAML or
// written by hand.
func DecodeYAML(data []byte) (*Config, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "decode yaml").UserAction().Build()
	}
	return New(def)
}
