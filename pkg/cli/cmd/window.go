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
	"io"

	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/spf13/cobra"
)

type windowOutput struct {
	Page         int   `json:"page" yaml:"page"`
	TotalPages   int   `json:"totalPages" yaml:"totalPages"`
	Strict       bool  `json:"strict" yaml:"strict"`
	VisiblePages []int `json:"visiblePages" yaml:"visiblePages"`
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the page numbers a paginator renders",
	Long: `Compute the visible page numbers for a page out of a number of pages.
The window is computed locally unless --remote is given.`,
	Example: `  promoadmin-cli window --page 3 --total-pages 10
  promoadmin-cli window --page 10 --total-pages 10 --strict -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		totalPages, _ := cmd.Flags().GetInt("total-pages")
		remote, _ := cmd.Flags().GetBool("remote")
		output, _ := cmd.Flags().GetString("output")

		strict := GetCLIConfig().Strict
		if cmd.Flags().Changed("strict") {
			strict, _ = cmd.Flags().GetBool("strict")
		}

		if page < 1 {
			return fmt.Errorf("page must be at least 1")
		}
		if totalPages < 0 {
			return fmt.Errorf("total pages cannot be negative")
		}
		if err := validateOutput(output); err != nil {
			return err
		}

		var visible []int
		if remote {
			result, err := GetClient().Window(page, totalPages, &strict)
			if err != nil {
				return err
			}
			visible = result.VisiblePages
		} else {
			result := pagination.Paginate(pagination.Request{Page: page, TotalPages: totalPages}, pagination.Options{
				StrictOverflowCompensation: strict,
			})
			visible = result.VisiblePages
		}

		return printWindow(cmd.OutOrStdout(), output, windowOutput{
			Page:         page,
			TotalPages:   totalPages,
			Strict:       strict,
			VisiblePages: visible,
		}, currentPageStyle())
	},
}

func printWindow(w io.Writer, format string, out windowOutput, highlight func(string) string) error {
	if out.VisiblePages == nil {
		out.VisiblePages = []int{}
	}
	if format != outputText {
		return writeStructured(w, format, out)
	}

	line := renderPaginator(out.Page, out.TotalPages, out.VisiblePages, highlight)
	if line == "" {
		line = "no pages"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().Int("page", 1, "Current page number")
	windowCmd.Flags().Int("total-pages", 0, "Total number of pages")
	windowCmd.Flags().Bool("strict", false, "Offer earlier pages when the window runs past the last page")
	windowCmd.Flags().Bool("remote", false, "Ask the server instead of computing locally")
	windowCmd.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
}
