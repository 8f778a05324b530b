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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newPageGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if err := validateOutput(output); err != nil {
				return err
			}

			page, err := GetClient().GetPage(args[0])
			if err != nil {
				return err
			}
			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, page)
			}
			return printDocument(page)
		},
	}
	getCmd.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
	return getCmd
}

func newPageCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a page",
		Example: `  promoadmin-cli pages create --field name=Shop --field phone="+263 77 000 0000"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDocument(cmd)
			if err != nil {
				return err
			}

			page, err := GetClient().CreatePage(body)
			if err != nil {
				return err
			}
			pterm.Success.Printf("Page created: %s\n", docField(page, "slug"))
			return printDocument(page)
		},
	}
	addDocumentFlags(createCmd)
	return createCmd
}

func newCurrencyAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a currency",
		Example: `  promoadmin-cli currencies add --field acronym=ZWL --field name="Zimbabwe Dollar" --field symbol=Z$`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDocument(cmd)
			if err != nil {
				return err
			}

			currency, err := GetClient().CreateCurrency(body)
			if err != nil {
				return err
			}
			pterm.Success.Printf("%s was successfully added\n", docField(currency, "name"))
			return nil
		},
	}
	addDocumentFlags(addCmd)
	return addCmd
}

func newCurrencyDeleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete <acronym>",
		Short: "Delete a currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acronym := args[0]
			confirmed, err := confirmDeletion(cmd, fmt.Sprintf("currency '%s'", acronym))
			if err != nil || !confirmed {
				return err
			}

			if _, err := GetClient().DeleteCurrency(acronym); err != nil {
				return err
			}
			pterm.Success.Printf("Currency deleted: %s\n", acronym)
			return nil
		},
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return deleteCmd
}
