package dictionary

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes d as a JSON object with members in insertion order.
func (d *Dictionary[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for e := d.order.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry[T])

		if e != d.order.Front() {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(ent.key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(ent.value)
		if err != nil {
			return nil, errors.Wrapf(err, "encode value of %q", ent.key)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (d *Dictionary[T]) UnmarshalJSON(data []byte) error {
	return d.DecodeJSON(bytes.NewReader(data))
}

// DecodeJSON reads a single JSON object from r and sets its members in
// document order. A null document leaves d unchanged. Nothing is set unless
// the whole object decodes and r holds nothing else.
func (d *Dictionary[T]) DecodeJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)

	t, err := decoder.Token()
	if err != nil {
		return errors.Wrap(err, "read object")
	}

	if t == nil {
		return expectEnd(decoder)
	}

	if t != json.Delim('{') {
		return errors.Wrapf(ErrNotObject, "got %v", t)
	}

	var pairs []Pair[T]

	for decoder.More() {
		t, err = decoder.Token()
		if err != nil {
			return errors.Wrap(err, "read key")
		}

		key, ok := t.(string)
		if !ok {
			return errors.Wrapf(ErrInvalidKeyType, "got %T", t)
		}

		var value T
		if err = decoder.Decode(&value); err != nil {
			return errors.Wrapf(err, "decode value of %q", key)
		}

		pairs = append(pairs, P(key, value))
	}

	// expect a '}'
	if _, err = decoder.Token(); err != nil {
		return errors.Wrap(err, "read object end")
	}

	if err = expectEnd(decoder); err != nil {
		return err
	}

	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}

	return nil
}

// expectEnd fails unless the decoder's input is exhausted. Reading to the end
// also lets a compressed source verify its trailer.
func expectEnd(decoder *json.Decoder) error {
	t, err := decoder.Token()

	if err == io.EOF {
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "read after object")
	}

	return errors.Wrapf(ErrTrailingData, "got %v", t)
}

// MarshalYAML encodes d as a YAML mapping with keys in insertion order.
func (d *Dictionary[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for e := d.order.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry[T])

		value := &yaml.Node{}
		if err := value.Encode(ent.value); err != nil {
			return nil, errors.Wrapf(err, "encode value of %q", ent.key)
		}

		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: ent.key,
		}, value)
	}

	return node, nil
}

// UnmarshalYAML sets the entries of a YAML mapping in document order. Keys
// that are not strings, such as 1 or true, fail with ErrInvalidKeyType.
// Merge keys (<<) are expanded where they appear. Nothing is set unless the
// whole mapping decodes.
func (d *Dictionary[T]) UnmarshalYAML(value *yaml.Node) error {
	node := resolveYAML(value)

	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return errors.Wrapf(ErrNotObject, "line %d", node.Line)
	}

	pairs, err := yamlPairs[T](node)
	if err != nil {
		return err
	}

	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}

	return nil
}

func resolveYAML(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

func yamlKey(node *yaml.Node) (string, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return "", errors.Wrapf(err, "line %d", node.Line)
	}

	key, err := keyOf(raw)
	if err != nil {
		return "", errors.Wrapf(err, "line %d", node.Line)
	}

	return key, nil
}

// yamlPairs returns the entries of a mapping node in document order. Keys
// written in the mapping itself win over merged ones, and an earlier merged
// mapping wins over a later one.
func yamlPairs[T any](node *yaml.Node) ([]Pair[T], error) {
	explicit := make(map[string]bool)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if isMergeKey(node.Content[i]) {
			continue
		}

		key, err := yamlKey(node.Content[i])
		if err != nil {
			return nil, err
		}

		explicit[key] = true
	}

	merged := make(map[string]bool)
	pairs := make([]Pair[T], 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if isMergeKey(keyNode) {
			sources, err := mergeSources[T](valueNode)
			if err != nil {
				return nil, err
			}

			for _, p := range sources {
				if explicit[p.Key] || merged[p.Key] {
					continue
				}

				merged[p.Key] = true
				pairs = append(pairs, p)
			}

			continue
		}

		key, err := yamlKey(keyNode)
		if err != nil {
			return nil, err
		}

		var v T
		if err = valueNode.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "decode value of %q", key)
		}

		pairs = append(pairs, P(key, v))
	}

	return pairs, nil
}

// mergeSources flattens the value of a merge key, a mapping or a sequence of
// mappings, into pairs in sequence order.
func mergeSources[T any](node *yaml.Node) ([]Pair[T], error) {
	node = resolveYAML(node)

	switch node.Kind {
	case yaml.MappingNode:
		return yamlPairs[T](node)
	case yaml.SequenceNode:
		var pairs []Pair[T]

		for _, item := range node.Content {
			item = resolveYAML(item)

			if item.Kind != yaml.MappingNode {
				return nil, errors.Wrapf(ErrNotObject, "merge at line %d", item.Line)
			}

			p, err := yamlPairs[T](item)
			if err != nil {
				return nil, err
			}

			pairs = append(pairs, p...)
		}

		return pairs, nil
	}

	return nil, errors.Wrapf(ErrNotObject, "merge at line %d", node.Line)
}
