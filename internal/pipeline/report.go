package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/sow-cli/internal/model"
)

// FormatReport generates a human-readable report for a completed run.
func FormatReport(record *model.ClientRecord, result *model.NarrativeResult) string {
	var b strings.Builder

	name := record.Basic.ClientID
	if name == "" {
		name = "unknown client"
	}
	fmt.Fprintf(&b, "# Source of Wealth Report: %s\n", name)
	fmt.Fprintf(&b, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(&b, "Client type: %s\n\n", record.Basic.ClientTypeLabel)

	b.WriteString("## Narrative\n")
	if strings.TrimSpace(result.FinalNarrative) == "" {
		b.WriteString("No narrative produced.\n\n")
	} else {
		b.WriteString(strings.TrimSpace(result.FinalNarrative))
		b.WriteString("\n\n")
	}

	b.WriteString("## Missing Scenarios\n")
	if len(result.MissingScenarios) == 0 {
		b.WriteString("None.\n\n")
	} else {
		names := make([]string, 0, len(result.MissingScenarios))
		for name := range result.MissingScenarios {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- %s: %s\n", name, result.MissingScenarios[name])
		}
		b.WriteString("\n")
	}

	// Controls print in table order: the order itself is part of the audit
	// contract, so no sorting here.
	b.WriteString("## Controls\n")
	if len(result.Controls) == 0 {
		b.WriteString("No controls extracted.\n")
	} else {
		for _, c := range result.Controls {
			fmt.Fprintf(&b, "- **%s** (%s): %s [source: %s", c.ControlLabel, c.ControlType, c.ControlValue, c.ControlSource)
			if c.SourceDocument != "" {
				fmt.Fprintf(&b, ", doc: %s", c.SourceDocument)
				if c.ControlDocPages != "" {
					fmt.Fprintf(&b, " p.%s", c.ControlDocPages)
				}
			}
			b.WriteString("]\n")
		}
	}

	return b.String()
}
