// Package worldfile loads declarative world definitions from YAML: rooms,
// exits, objects, flags and globals. Conditions, scripts, phase handlers
// and events are not expressible in data files; content that needs them is
// authored in Go against the world API, usually layered on top of a loaded
// file.
package worldfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a parsed world file.
type Document struct {
	Name    string      `yaml:"name"`
	Start   string      `yaml:"start"` // room ID the player begins in
	Rooms   []RoomDef   `yaml:"rooms"`
	Objects []ObjectDef `yaml:"objects,omitempty"`
}

// RoomDef describes one room.
type RoomDef struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Description  string             `yaml:"description,omitempty"`
	Lit          bool               `yaml:"lit,omitempty"` // naturally lit
	Exits        map[string]ExitDef `yaml:"exits,omitempty"`
	LocalGlobals []string           `yaml:"local_globals,omitempty"`
}

// ExitDef describes one exit. In YAML it is either a plain destination room
// ID or an object with gating options.
type ExitDef struct {
	To      string `yaml:"to"`
	Hidden  bool   `yaml:"hidden,omitempty"`
	Key     string `yaml:"key,omitempty"` // object ID the actor must carry
	Success string `yaml:"success,omitempty"`
	Failure string `yaml:"failure,omitempty"`

	Deadly       bool   `yaml:"deadly,omitempty"`
	DeathMessage string `yaml:"death_message,omitempty"`

	Victory        bool   `yaml:"victory,omitempty"`
	VictoryMessage string `yaml:"victory_message,omitempty"`
}

// UnmarshalYAML accepts both the shorthand string form ("south: bar") and
// the full object form.
func (x *ExitDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		x.To = value.Value
		return nil
	}

	type alias ExitDef
	var raw alias
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*x = ExitDef(raw)
	return nil
}

// ObjectDef describes one object.
type ObjectDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Location    string   `yaml:"location,omitempty"` // room/object ID or "player"
	Flags       []string `yaml:"flags,omitempty"`
	Global      bool     `yaml:"global,omitempty"`  // referenceable from every room
	Scenery     bool     `yaml:"scenery,omitempty"` // in scope but unlisted
	Text        string   `yaml:"text,omitempty"`    // readable text
}

// Parse decodes a world document from YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse world file: %w", err)
	}
	return &doc, nil
}
