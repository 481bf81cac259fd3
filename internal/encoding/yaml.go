package encoding

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML marshals a value to YAML with two-space indentation.
func ToYAML[T any](value T) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseYAML decodes YAML into maps, slices and scalars. An empty document
// yields nil. A key repeated within one mapping keeps its last value, so
// hand-edited files with a duplicated line still load.
func ParseYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nodeValue(&doc)
}

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return mappingValue(n)
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return v, nil
}

// mappingValue applies explicit keys over "<<" merges, later keys winning.
func mappingValue(n *yaml.Node) (map[string]any, error) {
	out := make(map[string]any, len(n.Content)/2)

	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.ShortTag() == "!!merge" {
			merges = append(merges, val)
			continue
		}

		v, err := nodeValue(val)
		if err != nil {
			return nil, err
		}
		out[key.Value] = v
	}

	for _, m := range merges {
		v, err := nodeValue(m)
		if err != nil {
			return nil, err
		}

		sources := []any{v}
		if list, ok := v.([]any); ok {
			sources = list
		}

		for _, src := range sources {
			mm, ok := src.(map[string]any)
			if !ok {
				continue
			}
			for k, val := range mm {
				if _, set := out[k]; !set {
					out[k] = val
				}
			}
		}
	}

	return out, nil
}
