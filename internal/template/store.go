package template

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ControlDefinition describes how one client-profile field surfaces in the
// audit control table: its display type, label, and whether the value is
// lowercased for display.
type ControlDefinition struct {
	Key          string `yaml:"key"`
	ControlType  string `yaml:"control_type"`
	ControlLabel string `yaml:"control_label"`
	Lowercase    bool   `yaml:"lowercase,omitempty"`
}

// ScenarioTemplate is one named wealth-origin scenario and its narrative
// template. Placeholders are bare field keys, not delimited tokens.
type ScenarioTemplate struct {
	Name      string `yaml:"name"`
	Narrative string `yaml:"narrative"`
}

// Template is the full narrative catalog for one client type. Controls and
// Scenarios are slices, not maps: their order is a presentation contract
// consumed by downstream display.
type Template struct {
	ClientType string              `yaml:"client_type"`
	Controls   []ControlDefinition `yaml:"controls"`
	Intro      string              `yaml:"intro"`
	Scenarios  []ScenarioTemplate  `yaml:"sow_scenarios"`
}

// Scenario returns the named scenario template, or nil if the catalog does
// not declare it.
func (t *Template) Scenario(name string) *ScenarioTemplate {
	for i := range t.Scenarios {
		if t.Scenarios[i].Name == name {
			return &t.Scenarios[i]
		}
	}
	return nil
}

// Store is the per-client-type template catalog. Lookup is by exact
// client-type string with no inheritance or defaulting.
type Store struct {
	templates map[string]*Template
}

// catalog is the YAML file shape.
type catalog struct {
	ClientTypes []Template `yaml:"client_types"`
}

// newStore indexes templates by client type, skipping unnamed entries.
func newStore(templates []Template) *Store {
	s := &Store{templates: make(map[string]*Template, len(templates))}
	for i := range templates {
		t := &templates[i]
		if t.ClientType == "" {
			zap.L().Warn("template: skipping catalog entry without client_type")
			continue
		}
		s.templates[t.ClientType] = t
	}
	return s
}

// Load reads a YAML template catalog from disk. A missing or malformed
// catalog file is a fatal configuration error, unlike an absent client type.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "template: read catalog")
	}

	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, eris.Wrap(err, "template: parse catalog")
	}

	return newStore(cat.ClientTypes), nil
}

// Get returns the template for the given client type. ok is false when the
// catalog has no entry for it; callers treat that as a valid unsupported
// client type, not an error.
func (s *Store) Get(clientType string) (*Template, bool) {
	t, ok := s.templates[clientType]
	return t, ok
}
