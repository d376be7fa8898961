// Package pipeline orchestrates the end-to-end Source of Wealth run for a
// single client: template lookup, per-document extraction, narrative
// assembly, control extraction, and enhancement.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sow-cli/internal/extract"
	"github.com/sells-group/sow-cli/internal/model"
	"github.com/sells-group/sow-cli/internal/narrative"
	"github.com/sells-group/sow-cli/internal/template"
)

// Pipeline runs the SOW narrative assembly for one client at a time. All
// collaborators are injected; the pipeline holds no ambient state and no
// state crosses runs.
type Pipeline struct {
	templates *template.Store
	extractor *extract.Extractor
	enhancer  *narrative.Enhancer

	// Enhance can be disabled to skip the rewrite pass (demo/debug runs).
	Enhance bool
}

// New creates a Pipeline with all dependencies.
func New(templates *template.Store, extractor *extract.Extractor, enhancer *narrative.Enhancer) *Pipeline {
	return &Pipeline{
		templates: templates,
		extractor: extractor,
		enhancer:  enhancer,
		Enhance:   true,
	}
}

// ProcessClient runs the full pipeline for one client record and its
// documents. The returned result is always complete: partial data is an
// expected, silently degraded outcome, and only context cancellation or a
// template-store malfunction aborts the run.
func (p *Pipeline) ProcessClient(ctx context.Context, record *model.ClientRecord, docs []model.Document) (*model.NarrativeResult, error) {
	runID := uuid.NewString()
	clientType := record.Basic.ClientTypeLabel
	log := zap.L().With(
		zap.String("run_id", runID),
		zap.String("client_id", record.Basic.ClientID),
		zap.String("client_type", clientType),
	)
	log.Info("pipeline: starting sow run", zap.Int("documents", len(docs)))

	tpl, ok := p.templates.Get(clientType)
	if !ok {
		// Valid unsupported-client-type outcome, not an error.
		log.Warn("pipeline: no template for client type")
		return &model.NarrativeResult{
			RunID:            runID,
			MissingScenarios: make(map[string]string),
		}, nil
	}

	extraction, err := p.extractor.Run(ctx, clientType, docs, tpl)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: extract documents")
	}
	log.Info("pipeline: extraction complete",
		zap.Int("intro_fields", len(extraction.Intro)),
		zap.Int("scenarios_with_data", len(extraction.Scenarios)),
	)

	mergeParsedScenarios(record, extraction, tpl)

	result := narrative.Assemble(record, extraction, tpl)
	result.RunID = runID
	log.Info("pipeline: narrative assembled",
		zap.Int("controls", len(result.Controls)),
		zap.Int("missing_scenarios", len(result.MissingScenarios)),
	)

	if p.Enhance {
		enhanced, enhanceErr := p.enhancer.Enhance(ctx, result.FinalNarrative)
		if enhanceErr != nil {
			log.Warn("pipeline: enhancement failed, keeping cleaned narrative", zap.Error(enhanceErr))
		}
		result.FinalNarrative = enhanced
	}

	log.Info("pipeline: sow run complete")
	return &result, nil
}

// mergeParsedScenarios appends one parsed record per contributing document
// to the client record's scenarios_parsed, in template catalog order. The
// assembler only renders the first record per scenario, but the full set is
// kept on the record.
func mergeParsedScenarios(record *model.ClientRecord, extraction model.ExtractionMap, tpl *template.Template) {
	if record.ScenariosParsed == nil {
		record.ScenariosParsed = make(map[string][]map[string]string)
	}
	for _, sc := range tpl.Scenarios {
		for _, ex := range extraction.Scenarios[sc.Name] {
			parsed := make(map[string]string, len(ex))
			for key, fr := range ex {
				parsed[key] = fr.Value
			}
			record.ScenariosParsed[sc.Name] = append(record.ScenariosParsed[sc.Name], parsed)
		}
	}
}
