package main

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/sow-cli/internal/extract"
	"github.com/sells-group/sow-cli/internal/narrative"
	"github.com/sells-group/sow-cli/internal/pipeline"
	"github.com/sells-group/sow-cli/internal/prompts"
	"github.com/sells-group/sow-cli/internal/template"
	anthropicpkg "github.com/sells-group/sow-cli/pkg/anthropic"
)

// initPipeline wires the pipeline from configuration: template catalog,
// prompt library, generation client, extractor, and enhancer.
func initPipeline() (*pipeline.Pipeline, error) {
	templates := template.Builtin()
	if cfg.Templates.Path != "" {
		loaded, err := template.Load(cfg.Templates.Path)
		if err != nil {
			return nil, eris.Wrap(err, "load template catalog")
		}
		templates = loaded
	}

	lib := prompts.NewLibrary(cfg.Prompts.Dir)

	client := anthropicpkg.NewClient(cfg.Anthropic.Key)
	generator := anthropicpkg.NewGenerator(
		client,
		cfg.Anthropic.Model,
		cfg.Anthropic.MaxTokens,
		cfg.Anthropic.Temperature,
	)

	extractor := extract.NewExtractor(generator, lib, cfg.Pipeline.MaxConcurrentDocs)
	enhancer := narrative.NewEnhancer(generator, lib)

	return pipeline.New(templates, extractor, enhancer), nil
}
