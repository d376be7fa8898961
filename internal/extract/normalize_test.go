package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := `{
		"client_name": "John Smith",
		"client_name_pages": "1",
		"client_net_worth_amount": "USD 5,000,000",
		"client_net_worth_amount_pages": "1, 2"
	}`

	ex, err := Normalize(raw, "doc-1")
	require.NoError(t, err)
	require.Len(t, ex, 2)

	name := ex["client_name"]
	assert.Equal(t, "client_name", name.Key)
	assert.Equal(t, "John Smith", name.Value)
	assert.Equal(t, "doc-1", name.Source)
	assert.Equal(t, "1", name.Pages)

	assert.Equal(t, "1, 2", ex["client_net_worth_amount"].Pages)
}

func TestNormalize_PagesKeysNeverStandalone(t *testing.T) {
	ex, err := Normalize(`{"orphan_pages": "3", "value_key": "x"}`, "doc-1")
	require.NoError(t, err)

	assert.NotContains(t, ex, "orphan_pages")
	assert.Contains(t, ex, "value_key")
}

func TestNormalize_EmptyValuesDropped(t *testing.T) {
	ex, err := Normalize(`{"a": "", "b": null, "c": "  ", "d": "kept"}`, "doc-1")
	require.NoError(t, err)

	require.Len(t, ex, 1)
	assert.Equal(t, "kept", ex["d"].Value)
	for _, rec := range ex {
		assert.NotEmpty(t, rec.Value)
	}
}

func TestNormalize_ValueWithoutPagesAnnotation(t *testing.T) {
	ex, err := Normalize(`{"client_name": "John Smith"}`, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "", ex["client_name"].Pages)
}

func TestNormalize_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"client_name\": \"John Smith\"}\n```"
	ex, err := Normalize(raw, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", ex["client_name"].Value)
}

func TestNormalize_NumbersAndArrays(t *testing.T) {
	ex, err := Normalize(`{
		"business_establishment_year": 2006,
		"business_ownership_percentage": 80.5,
		"business_name": "Smith Logistics LLC",
		"business_name_pages": [2, 3]
	}`, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "2006", ex["business_establishment_year"].Value)
	assert.Equal(t, "80.5", ex["business_ownership_percentage"].Value)
	assert.Equal(t, "2, 3", ex["business_name"].Pages)
}

func TestNormalize_Unparseable(t *testing.T) {
	ex, err := Normalize("I could not find any relevant information.", "doc-1")
	assert.Error(t, err)
	assert.Empty(t, ex)
}
