// Package prompts resolves the LLM prompt text used by extraction and
// enhancement. Prompts live as plain-text files under a configured
// directory; when a file is unavailable a built-in prompt of the same
// placeholder shape is substituted, so prompt authoring can evolve
// without a deploy.
package prompts

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Library looks up prompt templates by category and client type.
type Library struct {
	dir string
}

// NewLibrary creates a Library rooted at the given prompt directory.
// An empty dir means built-in prompts only.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// IntroPrompt returns the intro question-set prompt for the client type.
func (l *Library) IntroPrompt(clientType string) string {
	return l.load(filepath.Join(clientType, "intro.txt"), builtinIntroPrompt)
}

// ScenarioPrompt returns the question-set prompt for one scenario of the
// client type.
func (l *Library) ScenarioPrompt(clientType, scenario string) string {
	return l.load(filepath.Join(clientType, scenario+".txt"), builtinScenarioPrompt)
}

// RephrasePrompt returns the narrative rewrite instruction prompt.
func (l *Library) RephrasePrompt() string {
	return l.load("rephrase.txt", builtinRephrasePrompt)
}

// load reads a prompt file relative to the library dir, falling back to
// the built-in text when the file cannot be read.
func (l *Library) load(rel, fallback string) string {
	if l.dir == "" {
		return fallback
	}
	path := filepath.Join(l.dir, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		zap.L().Debug("prompts: using built-in prompt",
			zap.String("path", path),
			zap.Error(err),
		)
		return fallback
	}
	return string(data)
}

// Render substitutes {name} placeholders in a prompt template. Unknown
// placeholders are left as-is.
func Render(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

const builtinIntroPrompt = `You are a compliance analyst preparing a Source of Wealth review for a {client_type} client.

Read the document below and extract every fact relevant to the client's background: full name, date of birth, citizenship, country of domicile, net worth, net worth breakdown, and annual income.

Return a single flat JSON object. Use snake_case keys. For every extracted value, also include a "<key>_pages" entry listing the page numbers where the value was found (pages are marked inline as "Page N"), comma-separated. Omit any key you could not find; never return empty strings.

Document:
{document_text}`

const builtinScenarioPrompt = `You are a compliance analyst preparing a Source of Wealth review for a {client_type} client.

Read the document below and extract every fact relevant to the "{scenario}" source of wealth: names, dates, roles, percentages, and amounts.

Return a single flat JSON object. Use snake_case keys. For every extracted value, also include a "<key>_pages" entry listing the page numbers where the value was found (pages are marked inline as "Page N"), comma-separated. Omit any key you could not find; never return empty strings.

Document:
{document_text}`

const builtinRephrasePrompt = `Rewrite the Source of Wealth narrative below into natural, professional prose suitable for a compliance file. Preserve every fact, name, date, and amount exactly; you may reformat dates and amounts for readability. Do not add information, commentary, or headings. Return only the rewritten narrative.

Narrative:`
