// Package narrative assembles the Source of Wealth narrative from the
// client record, the merged extraction results, and the client-type
// template, and post-processes it into natural prose.
package narrative

import (
	"sort"
	"strings"

	"github.com/sells-group/sow-cli/internal/model"
	"github.com/sells-group/sow-cli/internal/template"
)

// missingScenarioReason is recorded for every template scenario the client
// record has no parsed data for.
const missingScenarioReason = "no data provided"

// Assemble renders the intro and scenario narratives for one client run.
// It never fails for missing data: unmatched placeholders stay literal,
// scenarios without parsed records are reported in MissingScenarios, and a
// nil template (unsupported client type) yields an empty result.
func Assemble(record *model.ClientRecord, extraction model.ExtractionMap, tpl *template.Template) model.NarrativeResult {
	result := model.NarrativeResult{
		MissingScenarios: make(map[string]string),
	}
	if tpl == nil {
		return result
	}

	intro := substituteFields(tpl.Intro, record.ProfileFields(tpl.ClientType))

	var rendered []string
	for _, sc := range tpl.Scenarios {
		parsed := record.ScenariosParsed[sc.Name]
		if len(parsed) == 0 {
			result.MissingScenarios[sc.Name] = missingScenarioReason
			continue
		}
		// Only the first parsed record renders; additional records from
		// other documents are kept in the data model but not used here.
		rendered = append(rendered, substituteFields(sc.Narrative, parsed[0]))
	}

	result.FinalNarrative = intro + "\n\n" + strings.Join(rendered, "\n\n")
	result.Controls = ExtractControls(record, extraction, tpl)
	return result
}

// substituteFields replaces every occurrence of a field name in the
// template with its value. Field names carry no delimiters, so the scanner
// always takes the longest field name that matches at the current position;
// a field that is a strict substring of another can never clip it. Values
// are written straight to the output and are never re-scanned, so a value
// containing another field name is left intact.
func substituteFields(tpl string, fields map[string]string) string {
	if tpl == "" || len(fields) == 0 {
		return tpl
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	var b strings.Builder
	b.Grow(len(tpl))
	for i := 0; i < len(tpl); {
		matched := false
		for _, k := range keys {
			if strings.HasPrefix(tpl[i:], k) {
				b.WriteString(fields[k])
				i += len(k)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(tpl[i])
			i++
		}
	}
	return b.String()
}
