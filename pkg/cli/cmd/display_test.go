package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestRenderPaginator(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		visible    []int
		want       string
	}{
		{"middle", 3, 10, []int{1, 2, 3, 4, 5}, "« 1 2 [3] 4 5 »"},
		{"first", 1, 10, []int{1, 2, 3, 4, 5}, "[1] 2 3 4 5 »"},
		{"last", 10, 10, []int{8, 9, 10}, "« 8 9 [10]"},
		{"single", 1, 1, []int{1}, "[1]"},
		{"empty", 1, 0, []int{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderPaginator(tt.page, tt.totalPages, tt.visible, nil))
		})
	}
}

func TestRenderPaginatorHighlight(t *testing.T) {
	line := renderPaginator(2, 3, []int{1, 2, 3}, func(s string) string { return "*" + s + "*" })
	assert.Equal(t, "« 1 *[2]* 3 »", line)
}

func TestPrintWindowText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printWindow(&buf, outputText, windowOutput{Page: 3, TotalPages: 10, VisiblePages: []int{1, 2, 3, 4, 5}}, nil))
	assert.Equal(t, "« 1 2 [3] 4 5 »\n", buf.String())

	buf.Reset()
	require.NoError(t, printWindow(&buf, outputText, windowOutput{Page: 1}, nil))
	assert.Equal(t, "no pages\n", buf.String())
}

func TestPrintWindowStructured(t *testing.T) {
	out := windowOutput{Page: 10, TotalPages: 10, Strict: true, VisiblePages: []int{6, 7, 8, 9, 10}}

	var buf bytes.Buffer
	require.NoError(t, printWindow(&buf, outputJSON, out, nil))
	var fromJSON windowOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, out, fromJSON)

	buf.Reset()
	require.NoError(t, printWindow(&buf, outputYAML, out, nil))
	var fromYAML windowOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, out, fromYAML)

	buf.Reset()
	require.NoError(t, printWindow(&buf, outputJSON, windowOutput{Page: 1}, nil))
	assert.Contains(t, buf.String(), `"visiblePages": []`)
}

func TestValidateOutput(t *testing.T) {
	for _, format := range []string{outputText, outputJSON, outputYAML} {
		assert.NoError(t, validateOutput(format))
	}
	assert.Error(t, validateOutput("xml"))
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"approved=true", "page=mine", "q=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "true", filters.Get("approved"))
	assert.Equal(t, "a=b", filters.Get("q"))

	_, err = parseFilters([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseFilters([]string{"=x"})
	assert.Error(t, err)
}

func TestListingTable(t *testing.T) {
	listing := &models.ListingDto{}
	listing.Docs = []models.Document{
		{"position": 11.0, "acronym": "EUR", "name": "Euro"},
		{"position": 12.0, "acronym": "USD", "name": "US Dollar", "symbol": "$"},
	}

	table := listingTable("currencies", listing)
	assert.Equal(t, pterm.TableData{
		{"#", "Acronym", "Name", "Symbol"},
		{"11", "EUR", "Euro", "-"},
		{"12", "USD", "US Dollar", "$"},
	}, table)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
	assert.Equal(t, "ünï…", truncate("ünïcödé", 4))
}
