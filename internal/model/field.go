package model

// FieldRecord is one extracted or known fact plus its provenance: the
// template key it answers, the textual value, the document it came from,
// and the pages it was found on.
type FieldRecord struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
	Pages  string `json:"pages,omitempty"`
}

// Extraction is the normalized output of one LLM call for one document and
// one prompt category, keyed by field name. A key with an empty value is
// never present; callers filter empties at the extraction boundary.
type Extraction map[string]FieldRecord

// ClientDataSource marks a value taken from the client record rather than
// from an extracted document.
const ClientDataSource = "client_data"

// ExtractionMap holds the merged extraction results for one client run.
// Intro is flat, last-write-wins across documents in document order.
// Scenarios keeps one Extraction per contributing document per scenario;
// scenario iteration order follows the template catalog, not this map.
type ExtractionMap struct {
	Intro     Extraction              `json:"intro"`
	Scenarios map[string][]Extraction `json:"scenarios"`
}

// NewExtractionMap returns an empty, initialized ExtractionMap.
func NewExtractionMap() ExtractionMap {
	return ExtractionMap{
		Intro:     make(Extraction),
		Scenarios: make(map[string][]Extraction),
	}
}

// MergeIntro folds a per-document intro extraction into the map.
// Duplicate keys across documents are last-write-wins, no dedup warning.
func (m *ExtractionMap) MergeIntro(ex Extraction) {
	for k, rec := range ex {
		m.Intro[k] = rec
	}
}

// AddScenario appends a per-document extraction for the named scenario.
// Empty extractions are dropped so a scenario with no data stays absent.
func (m *ExtractionMap) AddScenario(name string, ex Extraction) {
	if len(ex) == 0 {
		return
	}
	m.Scenarios[name] = append(m.Scenarios[name], ex)
}
