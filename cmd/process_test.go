package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"basic": {"client_id": "CLT-1", "client_type_label": "individual"},
		"individual": {"client_name": "John Smith"}
	}`), 0o644))

	record, err := loadClientRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "CLT-1", record.Basic.ClientID)
	assert.Equal(t, "John Smith", record.Profile("individual")["client_name"])
}

func TestLoadClientRecord_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := loadClientRecord(path)
	assert.Error(t, err)
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b-doc.txt"), []byte("Page 1\nsecond"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-doc.txt"), []byte("Page 1\nfirst"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.pdf"), []byte("binary"), 0o644))

	docs, err := loadDocuments(dir)
	require.NoError(t, err)

	// Only .txt files, in file-name order, ids without extension.
	require.Len(t, docs, 2)
	assert.Equal(t, "a-doc", docs[0].ID)
	assert.Equal(t, "b-doc", docs[1].ID)
	assert.Equal(t, "Page 1\nfirst", docs[0].Content)
}

func TestLoadDocuments_EmptyDir(t *testing.T) {
	docs, err := loadDocuments("")
	require.NoError(t, err)
	assert.Nil(t, docs)
}
