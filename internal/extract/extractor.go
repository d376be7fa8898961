package extract

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/sow-cli/internal/model"
	"github.com/sells-group/sow-cli/internal/prompts"
	"github.com/sells-group/sow-cli/internal/template"
)

// Invoker is the text-generation call used for extraction: one blocking
// prompt-in, text-out round trip with no retry layered on top.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Extractor runs per-document LLM extraction for a client: one call per
// document for the intro question set and one per document per scenario.
type Extractor struct {
	llm           Invoker
	prompts       *prompts.Library
	maxConcurrent int
}

// NewExtractor creates an Extractor. maxConcurrentDocs bounds parallel
// per-document extraction; values below 1 mean strictly sequential.
func NewExtractor(llm Invoker, lib *prompts.Library, maxConcurrentDocs int) *Extractor {
	if maxConcurrentDocs < 1 {
		maxConcurrentDocs = 1
	}
	return &Extractor{
		llm:           llm,
		prompts:       lib,
		maxConcurrent: maxConcurrentDocs,
	}
}

// docResult holds one document's extractions before merging. Scenario
// results are indexed parallel to the template's scenario catalog so the
// merge keeps catalog order.
type docResult struct {
	intro     model.Extraction
	scenarios []model.Extraction
}

// Run extracts all documents against the template's question sets and
// returns the merged ExtractionMap. Per-call failures are logged and leave
// a gap; only context cancellation aborts the run. Documents may be
// processed in parallel, but results are merged in document order so the
// final field set never depends on scheduling.
func (e *Extractor) Run(ctx context.Context, clientType string, docs []model.Document, tpl *template.Template) (model.ExtractionMap, error) {
	merged := model.NewExtractionMap()
	if tpl == nil || len(docs) == 0 {
		return merged, nil
	}

	results := make([]docResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrent)
	for i := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.extractDocument(gctx, clientType, docs[i], tpl)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return merged, err
	}

	for _, res := range results {
		merged.MergeIntro(res.intro)
		for si, sc := range tpl.Scenarios {
			merged.AddScenario(sc.Name, res.scenarios[si])
		}
	}
	return merged, nil
}

// extractDocument runs the intro and every scenario question set against a
// single document. Failures are per-category: a bad response for one
// category never aborts the others.
func (e *Extractor) extractDocument(ctx context.Context, clientType string, doc model.Document, tpl *template.Template) docResult {
	log := zap.L().With(zap.String("document", doc.ID))

	res := docResult{
		scenarios: make([]model.Extraction, len(tpl.Scenarios)),
	}

	res.intro = e.extractCategory(ctx, log, doc,
		prompts.Render(e.prompts.IntroPrompt(clientType), map[string]string{
			"client_type":   clientType,
			"document_text": doc.Content,
		}), "intro")

	for i, sc := range tpl.Scenarios {
		res.scenarios[i] = e.extractCategory(ctx, log, doc,
			prompts.Render(e.prompts.ScenarioPrompt(clientType, sc.Name), map[string]string{
				"client_type":   clientType,
				"scenario":      sc.Name,
				"document_text": doc.Content,
			}), sc.Name)
	}
	return res
}

// extractCategory issues one extraction call and normalizes its response.
// Returns an empty extraction on any failure.
func (e *Extractor) extractCategory(ctx context.Context, log *zap.Logger, doc model.Document, prompt, category string) model.Extraction {
	raw, err := e.llm.Invoke(ctx, prompt)
	if err != nil {
		log.Warn("extract: generation call failed",
			zap.String("category", category),
			zap.Error(err),
		)
		return model.Extraction{}
	}

	ex, err := Normalize(raw, doc.ID)
	if err != nil {
		log.Warn("extract: unparseable response",
			zap.String("category", category),
			zap.Error(err),
		)
		return model.Extraction{}
	}

	log.Debug("extract: category complete",
		zap.String("category", category),
		zap.Int("fields", len(ex)),
	)
	return ex
}
