package narrative

import (
	"fmt"
	"strings"

	"github.com/sells-group/sow-cli/internal/model"
	"github.com/sells-group/sow-cli/internal/template"
)

// ExtractControls walks the template's control-definition table and emits
// one audit record per control whose key exists in the client profile.
// Records keep the table's declared order: that order is a presentation
// contract for downstream display, not an implementation detail.
//
// Only profile-resident fields produce controls. When the same key was also
// extracted from a document, the record carries that document id and page
// list as provenance; otherwise both stay empty.
func ExtractControls(record *model.ClientRecord, extraction model.ExtractionMap, tpl *template.Template) []model.ControlRecord {
	if tpl == nil {
		return nil
	}

	profile := record.Profile(tpl.ClientType)
	if profile == nil {
		return nil
	}

	var controls []model.ControlRecord
	for _, def := range tpl.Controls {
		raw, ok := profile[def.Key]
		if !ok {
			continue
		}

		value := ""
		if raw != nil {
			value = fmt.Sprintf("%v", raw)
		}
		if def.Lowercase {
			value = strings.ToLower(value)
		}

		rec := model.ControlRecord{
			ControlName:        def.Key,
			ControlValue:       value,
			ControlSource:      model.ClientDataSource,
			ControlType:        def.ControlType,
			ControlLabel:       def.ControlLabel,
			InInitialNarrative: true,
		}
		if fr, found := extraction.Intro[def.Key]; found {
			rec.SourceDocument = fr.Source
			rec.ControlDocPages = fr.Pages
		}
		controls = append(controls, rec)
	}
	return controls
}
