package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitmvp-com/simple-data-viz/engine"
	"github.com/gitmvp-com/simple-data-viz/session"
)

// ============================================================================
// SHELF FILE — Saved chart setup, replayed as session actions
// ============================================================================
// YAML (or JSON, which yaml.v3 also reads):
//
//   mark: line
//   x: age                 # column only, type inferred
//   y: {field: score, type: ordinal}
//   color: city
//
// Nothing here writes state directly; every entry becomes a SetMark,
// SetField or SetType action and goes through the same checks as a click.
// ============================================================================

// shelfFile is the on-disk chart setup.
type shelfFile struct {
	Mark  string   `yaml:"mark"`
	X     *binding `yaml:"x"`
	Y     *binding `yaml:"y"`
	Color *binding `yaml:"color"`
}

// binding is a column with an optional type override.
type binding struct {
	Field string `yaml:"field"`
	Type  string `yaml:"type"`
}

// UnmarshalYAML accepts either a bare column name or a {field, type} map.
func (b *binding) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		b.Field = node.Value
		return nil
	}

	type plain binding
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*b = binding(p)
	return nil
}

// readShelfFile loads and decodes a shelf file.
func readShelfFile(path string) (*shelfFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseShelfFile(data)
}

func parseShelfFile(data []byte) (*shelfFile, error) {
	var f shelfFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid shelf file: %w", err)
	}
	return &f, nil
}

// Actions converts the file into session actions in channel order.
func (f *shelfFile) Actions() ([]session.Action, error) {
	var actions []session.Action

	if f.Mark != "" {
		m, err := engine.ParseMark(f.Mark)
		if err != nil {
			return nil, err
		}
		actions = append(actions, session.SetMark{Mark: m})
	}

	bindings := []struct {
		ch engine.Channel
		b  *binding
	}{
		{engine.ChannelX, f.X},
		{engine.ChannelY, f.Y},
		{engine.ChannelColor, f.Color},
	}
	for _, entry := range bindings {
		if entry.b == nil {
			continue
		}
		more, err := bindingActions(entry.ch, entry.b.Field, entry.b.Type)
		if err != nil {
			return nil, err
		}
		actions = append(actions, more...)
	}
	return actions, nil
}

// bindingActions turns one channel's column and type into actions.
// An empty column leaves the slot alone; a type without a column still
// yields SetType, which is a no-op on an empty slot.
func bindingActions(ch engine.Channel, column, fieldType string) ([]session.Action, error) {
	var actions []session.Action
	if column != "" {
		actions = append(actions, session.SetField{Channel: ch, Column: column})
	}
	if fieldType != "" {
		t, err := engine.ParseFieldType(fieldType)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ch, err)
		}
		actions = append(actions, session.SetType{Channel: ch, Type: t})
	}
	return actions, nil
}
