package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `client_types:
  - client_type: individual
    controls:
      - key: client_name
        control_type: text
        control_label: Client Name
      - key: client_net_worth_breakdown
        control_type: text
        control_label: Net Worth Breakdown
        lowercase: true
    intro: "client_name holds citizenship of client_country_of_citizenship."
    sow_scenarios:
      - name: business_ownership
        narrative: "The client owns business_name."
      - name: inheritance
        narrative: "The client inherited inheritance_amount."
  - client_type: entity
    intro: "entity_name is incorporated in entity_country."
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	store, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	tpl, ok := store.Get("individual")
	require.True(t, ok)
	assert.Equal(t, "individual", tpl.ClientType)

	// Control and scenario order mirror the catalog, not alphabetical order.
	require.Len(t, tpl.Controls, 2)
	assert.Equal(t, "client_name", tpl.Controls[0].Key)
	assert.False(t, tpl.Controls[0].Lowercase)
	assert.True(t, tpl.Controls[1].Lowercase)

	require.Len(t, tpl.Scenarios, 2)
	assert.Equal(t, "business_ownership", tpl.Scenarios[0].Name)
	assert.Equal(t, "inheritance", tpl.Scenarios[1].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedCatalog(t *testing.T) {
	_, err := Load(writeCatalog(t, "client_types: [not: valid: yaml"))
	assert.Error(t, err)
}

func TestStore_GetExactMatchOnly(t *testing.T) {
	store, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	_, ok := store.Get("Individual")
	assert.False(t, ok, "lookup must be exact, no case folding")

	_, ok = store.Get("trust")
	assert.False(t, ok)
}

func TestTemplate_Scenario(t *testing.T) {
	store, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	tpl, _ := store.Get("individual")
	require.NotNil(t, tpl.Scenario("inheritance"))
	assert.Nil(t, tpl.Scenario("investments"))
}

func TestBuiltin(t *testing.T) {
	store := Builtin()

	tpl, ok := store.Get("individual")
	require.True(t, ok)
	assert.NotEmpty(t, tpl.Intro)
	assert.NotEmpty(t, tpl.Controls)
	assert.NotEmpty(t, tpl.Scenarios)

	// Every control key and scenario placeholder convention relies on bare
	// field names, so the intro must reference the profile keys literally.
	assert.Contains(t, tpl.Intro, "client_name was born on client_date_of_birth")
}
