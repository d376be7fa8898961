package narrative

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sow-cli/internal/prompts"
)

// Invoker is the text-generation call used for the rewrite pass.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// markupSpanOpen is the fixed set of internal highlight spans the review UI
// wraps around narrative fragments. Only these opens (and their matching
// closes) are stripped before enhancement; any other markup passes through.
var markupSpanOpen = []string{
	`<span class="sow-extracted">`,
	`<span class="sow-client-data">`,
	`<span class="sow-missing">`,
}

// Enhancer rewrites an assembled narrative into natural prose with a
// single text-generation call.
type Enhancer struct {
	llm     Invoker
	prompts *prompts.Library
}

// NewEnhancer creates an Enhancer with an injected generation client.
func NewEnhancer(llm Invoker, lib *prompts.Library) *Enhancer {
	return &Enhancer{llm: llm, prompts: lib}
}

// Enhance strips internal markup spans from the narrative and issues one
// rewrite call. On success the service's response is returned verbatim.
// On failure the cleaned-but-unenhanced narrative is returned together
// with the error, so the caller decides whether to log and degrade or to
// propagate; the returned text is always usable. An empty narrative short
// circuits without calling the service.
func (e *Enhancer) Enhance(ctx context.Context, narrative string) (string, error) {
	if strings.TrimSpace(narrative) == "" {
		return "", nil
	}

	cleaned := StripMarkup(narrative)
	prompt := e.prompts.RephrasePrompt() + "\n\n" + cleaned

	rewritten, err := e.llm.Invoke(ctx, prompt)
	if err != nil {
		return cleaned, eris.Wrap(err, "narrative: enhance")
	}
	return rewritten, nil
}

// StripMarkup removes the internal highlight span-open tags and their
// matching </span> closes. Foreign spans and every other HTML-like tag are
// left untouched, including their closes.
func StripMarkup(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	// depth counts currently open internal spans; foreign counts spans of
	// other kinds opened inside them, whose closes must survive.
	depth, foreign := 0, 0

	for i := 0; i < len(s); {
		if open := matchSpanOpen(s[i:]); open != "" {
			depth++
			i += len(open)
			continue
		}
		if depth > 0 && strings.HasPrefix(s[i:], "<span") && matchSpanOpen(s[i:]) == "" {
			foreign++
			b.WriteString("<span")
			i += len("<span")
			continue
		}
		if strings.HasPrefix(s[i:], "</span>") && depth > 0 {
			if foreign > 0 {
				foreign--
				b.WriteString("</span>")
			} else {
				depth--
			}
			i += len("</span>")
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// matchSpanOpen returns the internal span-open tag s starts with, or "".
func matchSpanOpen(s string) string {
	for _, tag := range markupSpanOpen {
		if strings.HasPrefix(s, tag) {
			return tag
		}
	}
	return ""
}
