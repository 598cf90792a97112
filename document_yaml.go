package etdoc

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/yaml.v3"
)

// MarshalYAML returns an ordered mapping node for the document.
func (d *Document) MarshalYAML() (any, error) {
	return yamlNode(d)
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Document:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range t.All() {
			vn, err := yamlNode(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
		}
		return n, nil
	case Document:
		return yamlNode(&t)
	case Set:
		return yamlSequence(t)
	case []any:
		return yamlSequence(t)
	case *apd.Decimal:
		switch {
		case t == nil:
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		case t.Form == apd.Finite:
			text := t.Text('f')
			tag := "!!int"
			if strings.ContainsRune(text, '.') {
				tag = "!!float"
			}
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.String()}, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

func yamlSequence(elems []any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range elems {
		en, err := yamlNode(e)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, en)
	}
	return n, nil
}

// UnmarshalYAML reads a YAML mapping, keeping its key order. Nested
// mappings become *Document values and sequences []any.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	n := value
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return &InvalidInputError{Got: "YAML " + yamlKindName(n.Kind)}
	}
	doc, err := yamlMapping(n)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

func yamlMapping(n *yaml.Node) (*Document, error) {
	doc := NewDocument()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		v, err := yamlValue(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		doc.Set(key, v)
	}
	return doc, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	if i, ok := v.(int); ok {
		return int64(i), nil
	}
	return v, nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "empty"
}
