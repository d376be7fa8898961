package template

// Builtin returns the compiled-in template catalog, used when no catalog
// file is configured. It currently covers the individual client type.
func Builtin() *Store {
	return newStore([]Template{individualTemplate})
}

var individualTemplate = Template{
	ClientType: "individual",
	Controls: []ControlDefinition{
		{Key: "client_name", ControlType: "text", ControlLabel: "Client Name"},
		{Key: "client_date_of_birth", ControlType: "date", ControlLabel: "Date of Birth"},
		{Key: "client_country_of_citizenship", ControlType: "text", ControlLabel: "Country of Citizenship"},
		{Key: "domicile_country_name", ControlType: "text", ControlLabel: "Country of Domicile"},
		{Key: "client_net_worth_amount", ControlType: "currency", ControlLabel: "Net Worth"},
		{Key: "client_net_worth_breakdown", ControlType: "text", ControlLabel: "Net Worth Breakdown", Lowercase: true},
		{Key: "client_annual_income_for_intro", ControlType: "currency", ControlLabel: "Annual Income"},
		{Key: "primary_sow_scenarios", ControlType: "text", ControlLabel: "Primary SOW Scenarios", Lowercase: true},
	},
	Intro: `client_name was born on client_date_of_birth and holds citizenship of client_country_of_citizenship, with current domicile in domicile_country_name. The client's estimated net worth is client_net_worth_amount, consisting primarily of client_net_worth_breakdown. The client's approximate annual income is client_annual_income_for_intro. The primary sources of wealth identified for this client are: primary_sow_scenarios.`,
	Scenarios: []ScenarioTemplate{
		{
			Name: "business_ownership",
			Narrative: `The client established or acquired business_name in business_establishment_year and currently holds business_ownership_percentage ownership, serving as business_role. The business operates in the business_industry sector and generates approximate annual revenue of business_annual_revenue, providing the client with annual distributions of business_annual_distributions.`,
		},
		{
			Name: "employment_income",
			Narrative: `The client has been employed as employment_position at employer_name since employment_start_year. The client's total annual compensation from this employment is employment_annual_compensation, including base salary and variable components.`,
		},
		{
			Name: "inheritance",
			Narrative: `The client received an inheritance from inheritance_source in inheritance_year with an approximate value of inheritance_amount. The inherited assets consisted of inheritance_asset_description.`,
		},
		{
			Name: "investments",
			Narrative: `The client has accumulated wealth through an investment portfolio held with investment_institution since investment_start_year. The portfolio is currently valued at approximately investment_portfolio_value and consists of investment_portfolio_composition.`,
		},
	},
}
