package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	doc, err := parseFields([]string{"amount=12.5", "active=true", "name=Shop", "note=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, models.Document{
		"amount": 12.5,
		"active": true,
		"name":   "Shop",
		"note":   "a=b",
		"empty":  "",
	}, doc)

	_, err = parseFields([]string{"novalue"})
	assert.Error(t, err)
}

func newDocumentCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addDocumentFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestReadDocumentMergesFileAndFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "currency.yaml")
	require.NoError(t, os.WriteFile(path, []byte("acronym: ZWL\nname: Zimbabwe Dollar\n"), 0o644))

	doc, err := readDocument(newDocumentCmd(t, "--file", path, "--field", "name=ZiG", "--field", "symbol=Z$"))
	require.NoError(t, err)
	assert.Equal(t, models.Document{"acronym": "ZWL", "name": "ZiG", "symbol": "Z$"}, doc)
}

func TestReadDocumentRequiresInput(t *testing.T) {
	_, err := readDocument(newDocumentCmd(t))
	assert.Error(t, err)

	_, err = readDocument(newDocumentCmd(t, "--file", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestDocumentsTable(t *testing.T) {
	table := documentsTable([]models.Document{
		{"_id": "p1", "amount": 10.0},
		{"_id": "p2", "currency": "USD"},
	})
	assert.Equal(t, pterm.TableData{
		{"_id", "amount", "currency"},
		{"p1", "10", "-"},
		{"p2", "-", "USD"},
	}, table)
}
