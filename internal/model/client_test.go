package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRecord_UnmarshalCapturesProfile(t *testing.T) {
	data := []byte(`{
		"basic": {"client_id": "CLT-1", "client_type_label": "individual"},
		"individual": {"client_name": "John Smith", "client_net_worth_amount": "USD 5,000,000"},
		"scenarios_parsed": {"business_ownership": [{"business_name": "Smith Logistics LLC"}]}
	}`)

	var record ClientRecord
	require.NoError(t, json.Unmarshal(data, &record))

	assert.Equal(t, "CLT-1", record.Basic.ClientID)
	assert.Equal(t, "individual", record.Basic.ClientTypeLabel)

	profile := record.Profile("individual")
	require.NotNil(t, profile)
	assert.Equal(t, "John Smith", profile["client_name"])

	require.Len(t, record.ScenariosParsed["business_ownership"], 1)
	assert.Equal(t, "Smith Logistics LLC", record.ScenariosParsed["business_ownership"][0]["business_name"])
}

func TestClientRecord_ProfileAbsentType(t *testing.T) {
	var record ClientRecord
	require.NoError(t, json.Unmarshal([]byte(`{"basic":{"client_type_label":"entity"}}`), &record))

	assert.Nil(t, record.Profile("individual"))
	assert.Nil(t, record.ProfileFields("individual"))
}

func TestClientRecord_ProfileFieldsStringifiesAndDropsEmpty(t *testing.T) {
	record := &ClientRecord{}
	record.SetProfile("individual", map[string]any{
		"client_name":   "John Smith",
		"birth_year":    1980,
		"verified":      true,
		"empty_field":   "",
		"missing_field": nil,
	})

	fields := record.ProfileFields("individual")
	assert.Equal(t, "John Smith", fields["client_name"])
	assert.Equal(t, "1980", fields["birth_year"])
	assert.Equal(t, "true", fields["verified"])
	assert.NotContains(t, fields, "empty_field")
	assert.NotContains(t, fields, "missing_field")
}

func TestClientRecord_MarshalRoundTrip(t *testing.T) {
	record := &ClientRecord{
		Basic: BasicInfo{ClientID: "CLT-2", ClientTypeLabel: "individual"},
		ScenariosParsed: map[string][]map[string]string{
			"inheritance": {{"inheritance_amount": "USD 1,000,000"}},
		},
	}
	record.SetProfile("individual", map[string]any{"client_name": "Jane Doe"})

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded ClientRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, record.Basic, decoded.Basic)
	assert.Equal(t, "Jane Doe", decoded.Profile("individual")["client_name"])
	assert.Equal(t, record.ScenariosParsed, decoded.ScenariosParsed)
}

func TestClientRecord_NonObjectTopLevelIgnored(t *testing.T) {
	var record ClientRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"basic": {"client_type_label": "individual"},
		"notes": "free text",
		"individual": {"client_name": "John Smith"}
	}`), &record))

	assert.Nil(t, record.Profile("notes"))
	assert.NotNil(t, record.Profile("individual"))
}
