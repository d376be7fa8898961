// Package sample generates a demo client record and documents for local
// runs and fixtures, so the pipeline can be exercised without a client
// record provider or document retrieval in place.
package sample

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/sow-cli/internal/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// usd renders an amount with digit grouping, e.g. "USD 5,000,000".
func usd(amount int64) string {
	return printer.Sprintf("USD %d", amount)
}

// Client returns a demo individual client record.
func Client() *model.ClientRecord {
	record := &model.ClientRecord{
		Basic: model.BasicInfo{
			ClientID:        "CLT-100042",
			ClientTypeLabel: "individual",
		},
		ScenariosParsed: make(map[string][]map[string]string),
	}
	record.SetProfile("individual", map[string]any{
		"client_name":                    "John Smith",
		"client_date_of_birth":           "1980-05-15",
		"client_country_of_citizenship":  "United States",
		"domicile_country_name":          "United States",
		"client_net_worth_amount":        usd(5_000_000),
		"client_net_worth_breakdown":     "real estate holdings (" + usd(2_500_000) + "), business equity and listed securities",
		"client_annual_income_for_intro": usd(500_000),
		"primary_sow_scenarios":          "business_ownership",
	})
	return record
}

// Documents returns demo page-delimited documents referencing the demo
// client. Page boundaries are marked inline the way the document provider
// delivers them.
func Documents() []model.Document {
	return []model.Document{
		{
			ID: "DOC-2023-001",
			Content: `Page 1
Client Background Summary

John Smith was born on 15 May 1980 in Chicago, Illinois, and is a citizen
of the United States, where he is also domiciled. His estimated net worth
is ` + usd(5_000_000) + `, of which real estate holdings account for
` + usd(2_500_000) + `.

Page 2
Business Interests

Mr. Smith founded Smith Logistics LLC in 2006 and retains an 80% ownership
interest, serving as Chief Executive Officer. The company operates in the
freight forwarding industry and generated approximately ` + usd(12_000_000) + `
in revenue last year, with distributions to Mr. Smith of ` + usd(450_000) + `.`,
		},
		{
			ID: "DOC-2023-002",
			Content: `Page 1
Income Verification

Annual income attributable to the client is approximately ` + usd(500_000) + `,
comprising business distributions and investment income. No employment
income from third parties was identified.`,
		},
	}
}
