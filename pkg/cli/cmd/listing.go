/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/masteryyh/promoadmin/pkg/consts"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const maxCellWidth = 40

type listColumn struct {
	header string
	field  string
}

var listColumns = map[string][]listColumn{
	consts.ResourcePromotions: {{"Slug", "slug"}, {"Title", "title"}, {"Step", "step"}, {"Approved", "approved"}},
	consts.ResourcePages:      {{"Slug", "slug"}, {"Name", "name"}},
	consts.ResourceCurrencies: {{"Acronym", "acronym"}, {"Name", "name"}, {"Symbol", "symbol"}},
	consts.ResourceUsers:      {{"Name", "name"}, {"Email", "email"}, {"Verified", "verified"}},
}

func docField(doc models.Document, field string) string {
	v, ok := doc[field]
	if !ok || v == nil {
		return "-"
	}
	switch value := v.(type) {
	case string:
		return truncate(value, maxCellWidth)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return truncate(fmt.Sprint(value), maxCellWidth)
	}
}

func parseFilters(raw []string) (url.Values, error) {
	filters := url.Values{}
	for _, f := range raw {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter '%s', expected key=value", f)
		}
		filters.Add(key, value)
	}
	return filters, nil
}

func listingTable(resource string, listing *models.ListingDto) pterm.TableData {
	columns := listColumns[resource]
	header := append([]string{"#"}, lo.Map(columns, func(c listColumn, _ int) string { return c.header })...)

	tableData := pterm.TableData{header}
	for _, doc := range listing.Docs {
		row := []string{docField(doc, "position")}
		for _, c := range columns {
			row = append(row, docField(doc, c.field))
		}
		tableData = append(tableData, row)
	}
	return tableData
}

func newListCmd(resource string) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", resource),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			rawFilters, _ := cmd.Flags().GetStringArray("filter")
			output, _ := cmd.Flags().GetString("output")

			if !cmd.Flags().Changed("limit") {
				limit = GetCLIConfig().PageSize
			}
			if err := validateOutput(output); err != nil {
				return err
			}
			filters, err := parseFilters(rawFilters)
			if err != nil {
				return err
			}

			listing, err := GetClient().List(resource, page, limit, filters)
			if err != nil {
				return err
			}

			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, listing)
			}

			if len(listing.Docs) == 0 {
				pterm.Warning.Printf("No %s found\n", resource)
				return nil
			}

			if err := pterm.DefaultTable.WithHasHeader().WithData(listingTable(resource, listing)).Render(); err != nil {
				return err
			}
			if line := renderPaginator(listing.Page, listing.TotalPages, listing.VisiblePages, currentPageStyle()); line != "" {
				pterm.Println(line)
			}
			pterm.Info.Printf("Total: %d, Page: %d/%d\n", listing.TotalDocs, listing.Page, listing.TotalPages)
			return nil
		},
	}

	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 10, "Page size")
	listCmd.Flags().StringArray("filter", nil, "Filter passed to the remote service, as key=value (repeatable)")
	listCmd.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
	return listCmd
}

func newResourceCmd(resource, short string) *cobra.Command {
	resourceCmd := &cobra.Command{
		Use:   resource,
		Short: short,
	}
	resourceCmd.AddCommand(newListCmd(resource))
	return resourceCmd
}

func init() {
	pagesCmd := newResourceCmd(consts.ResourcePages, "Browse and create pages")
	pagesCmd.AddCommand(newPageGetCmd(), newPageCreateCmd())
	rootCmd.AddCommand(pagesCmd)

	currenciesCmd := newResourceCmd(consts.ResourceCurrencies, "Browse, add and delete currencies")
	currenciesCmd.AddCommand(newCurrencyAddCmd(), newCurrencyDeleteCmd())
	rootCmd.AddCommand(currenciesCmd)

	rootCmd.AddCommand(newResourceCmd(consts.ResourceUsers, "Browse users"))
}
