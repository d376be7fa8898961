package model

import (
	"encoding/json"
	"fmt"
)

// BasicInfo holds the client identification fields common to all client types.
type BasicInfo struct {
	ClientID        string `json:"client_id"`
	ClientTypeLabel string `json:"client_type_label"`
}

// ClientRecord is the structured client record handed to the pipeline by the
// client-record provider. The profile sub-object is named after the client
// type ("individual", "entity", ...), so unknown top-level objects are
// captured dynamically at decode time.
type ClientRecord struct {
	Basic           BasicInfo                      `json:"basic"`
	ScenariosParsed map[string][]map[string]string `json:"scenarios_parsed"`

	profiles map[string]map[string]any
}

// clientRecordAlias avoids UnmarshalJSON recursion for the known fields.
type clientRecordAlias struct {
	Basic           BasicInfo                      `json:"basic"`
	ScenariosParsed map[string][]map[string]string `json:"scenarios_parsed"`
}

// UnmarshalJSON decodes the known fields and keeps every other top-level
// object as a type-named profile sub-object.
func (c *ClientRecord) UnmarshalJSON(data []byte) error {
	var alias clientRecordAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	c.Basic = alias.Basic
	c.ScenariosParsed = alias.ScenariosParsed

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.profiles = make(map[string]map[string]any)
	for key, msg := range raw {
		if key == "basic" || key == "scenarios_parsed" {
			continue
		}
		var profile map[string]any
		if err := json.Unmarshal(msg, &profile); err != nil {
			// Non-object top-level values are not profiles.
			continue
		}
		c.profiles[key] = profile
	}
	return nil
}

// MarshalJSON re-emits the profile sub-objects alongside the known fields.
func (c ClientRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.profiles)+2)
	for k, v := range c.profiles {
		out[k] = v
	}
	out["basic"] = c.Basic
	out["scenarios_parsed"] = c.ScenariosParsed
	return json.Marshal(out)
}

// SetProfile installs a profile sub-object under the given type name,
// replacing any existing one. Used by fixture generation and tests.
func (c *ClientRecord) SetProfile(clientType string, profile map[string]any) {
	if c.profiles == nil {
		c.profiles = make(map[string]map[string]any)
	}
	c.profiles[clientType] = profile
}

// Profile returns the raw profile sub-object for the given client type,
// or nil if the record carries none.
func (c *ClientRecord) Profile(clientType string) map[string]any {
	return c.profiles[clientType]
}

// ProfileFields returns the profile for the given client type with every
// value stringified, for placeholder substitution. Empty values are dropped
// so they can never blank out a placeholder.
func (c *ClientRecord) ProfileFields(clientType string) map[string]string {
	profile := c.profiles[clientType]
	if profile == nil {
		return nil
	}
	fields := make(map[string]string, len(profile))
	for k, v := range profile {
		if v == nil {
			continue
		}
		s := fmt.Sprintf("%v", v)
		if s == "" {
			continue
		}
		fields[k] = s
	}
	return fields
}

// Document is one retrieved client document: an identifier and its
// page-delimited plain-text content.
type Document struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
