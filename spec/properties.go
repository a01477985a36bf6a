package spec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Properties is an insertion-ordered map of property name to schema.
//
// OpenAPI tooling and generated documentation read better when object
// properties keep their first-seen order instead of Go's randomized map
// order, and deterministic output requires it. Both JSON and YAML
// marshaling preserve insertion order.
type Properties struct {
	keys []string
	m    map[string]*Schema
}

// NewProperties returns an empty ordered property map.
func NewProperties() *Properties {
	return &Properties{m: make(map[string]*Schema)}
}

// Set stores a property schema. The first Set of a name fixes its
// position; later Sets replace the schema in place.
func (p *Properties) Set(name string, s *Schema) {
	if p.m == nil {
		p.m = make(map[string]*Schema)
	}
	if _, exists := p.m[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.m[name] = s
}

// Get returns the schema for a property name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil || p.m == nil {
		return nil, false
	}
	s, ok := p.m[name]
	return s, ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Clone returns a deep copy.
func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	out := NewProperties()
	for _, k := range p.keys {
		out.Set(k, p.m[k].Clone())
	}
	return out
}

// MarshalJSON writes the properties as a JSON object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording key order as it appears in
// the input so that an export/import round trip is lossless.
func (p *Properties) UnmarshalJSON(data []byte) error {
	p.keys = nil
	p.m = make(map[string]*Schema)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("spec: properties must be a JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("spec: invalid property key %v", keyTok)
		}
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return err
		}
		p.Set(key, &s)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML renders the properties as an ordered YAML mapping node.
func (p *Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(p.keys)*2),
	}
	for _, k := range p.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode := &yaml.Node{}
		if err := valNode.Encode(p.m[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
