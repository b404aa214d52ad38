package uuidb64

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler; u is emitted as a plain string scalar.
func (u UUID) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only a scalar holding the
// canonical text form is accepted. yaml.v3 does not call it for null nodes,
// so a null value leaves u unchanged.
func (u *UUID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		err := &ParseError{Text: node.Value, Err: fmt.Errorf("expected scalar node, got kind %v", node.Kind)}
		return fmt.Errorf("yaml: line %d: %w", node.Line, err)
	}
	id, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("yaml: line %d: %w", node.Line, err)
	}
	*u = id
	return nil
}
