package sample

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	record := Client()

	assert.Equal(t, "individual", record.Basic.ClientTypeLabel)

	fields := record.ProfileFields("individual")
	require.NotNil(t, fields)
	assert.Equal(t, "John Smith", fields["client_name"])
	assert.Equal(t, "1980-05-15", fields["client_date_of_birth"])
	assert.Equal(t, "USD 5,000,000", fields["client_net_worth_amount"])
	assert.Contains(t, fields["client_net_worth_breakdown"], "USD 2,500,000")
}

func TestDocuments_PageMarkers(t *testing.T) {
	docs := Documents()
	require.NotEmpty(t, docs)

	for _, doc := range docs {
		assert.NotEmpty(t, doc.ID)
		assert.True(t, strings.Contains(doc.Content, "Page 1"),
			"document %s must carry inline page markers", doc.ID)
	}
}

func TestUSDGrouping(t *testing.T) {
	assert.Equal(t, "USD 5,000,000", usd(5_000_000))
	assert.Equal(t, "USD 500,000", usd(500_000))
	assert.Equal(t, "USD 450", usd(450))
}
