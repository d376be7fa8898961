package model

// ControlRecord is one audit entry tying a narrative fact to its value,
// type, and provenance. Records are created once per processing run and
// never mutated afterwards.
type ControlRecord struct {
	ControlName        string `json:"control_name"`
	ControlValue       string `json:"control_value"`
	ControlSource      string `json:"control_source"`
	ControlType        string `json:"control_type"`
	ControlLabel       string `json:"control_label"`
	SourceDocument     string `json:"source_document"`
	ControlDocPages    string `json:"control_doc_pages"`
	InInitialNarrative bool   `json:"in_initial_narrative"`
}

// NarrativeResult is the complete output of one client processing run.
// MissingScenarios maps scenario name to the reason it did not render.
type NarrativeResult struct {
	RunID            string            `json:"run_id"`
	FinalNarrative   string            `json:"final_narrative"`
	MissingScenarios map[string]string `json:"missing_scenarios"`
	Controls         []ControlRecord   `json:"controls"`
}
