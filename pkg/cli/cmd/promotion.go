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
	"strconv"

	"github.com/masteryyh/promoadmin/pkg/consts"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var promotionCmd = &cobra.Command{
	Use:     consts.ResourcePromotions,
	Aliases: []string{"promotion", "promo"},
	Short:   "Manage promotions",
	Long:    `List, create, inspect, approve, disapprove, finish and delete promotions and manage their prices`,
}

func printPromotion(p *models.PromotionDto) {
	image := "-"
	if p.DisplayImage != nil {
		image = fmt.Sprint(p.DisplayImage)
	}
	tableData := pterm.TableData{
		{"Slug", p.Slug},
		{"Title", p.Title},
		{"Step", strconv.Itoa(p.Step)},
		{"Next step", string(p.NextStep)},
		{"Approved", strconv.FormatBool(p.Approved)},
		{"Image", truncate(image, maxCellWidth)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
}

var promotionGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show a promotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		promotion, err := GetClient().GetPromotion(args[0])
		if err != nil {
			return err
		}
		printPromotion(promotion)
		return nil
	},
}

func newApprovalCmd(approved bool) *cobra.Command {
	use, short, done := "disapprove <slug>", "Withdraw the approval of a promotion", "Promotion disapproved"
	if approved {
		use, short, done = "approve <slug>", "Approve a promotion", "Promotion approved"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			promotion, err := GetClient().SetApproval(args[0], approved)
			if err != nil {
				return err
			}
			pterm.Success.Printf("%s: %s\n", done, promotion.Slug)
			return nil
		},
	}
}

var promotionFinishCmd = &cobra.Command{
	Use:   "finish <slug>",
	Short: "Mark the setup of a promotion as complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		promotion, err := GetClient().FinishPromotion(args[0])
		if err != nil {
			return err
		}
		pterm.Success.Printf("Promotion finished: %s (next step: %s)\n", promotion.Slug, promotion.NextStep)
		return nil
	},
}

var promotionDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a promotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		confirmed, err := confirmDeletion(cmd, fmt.Sprintf("promotion '%s'", slug))
		if err != nil || !confirmed {
			return err
		}

		if _, err := GetClient().DeletePromotion(slug); err != nil {
			return err
		}
		pterm.Success.Printf("Promotion deleted: %s\n", slug)
		return nil
	},
}

var promotionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a promotion on a page",
	Example: `  promoadmin-cli promotions create --page shop --field title="Summer sale"
  promoadmin-cli promotions create --page shop -f promotion.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetString("page")
		body, err := readDocument(cmd)
		if err != nil {
			return err
		}

		promotion, err := GetClient().CreatePromotion(page, body)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Promotion created: %s\n", promotion.Slug)
		printPromotion(promotion)
		return nil
	},
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Manage the prices of a promotion",
}

func printPrices(prices *models.PricesDto) error {
	if len(prices.Prices) == 0 {
		pterm.Warning.Printf("No prices for %s\n", prices.Promotion.Slug)
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(documentsTable(prices.Prices)).Render()
}

var pricesListCmd = &cobra.Command{
	Use:   "list <slug>",
	Short: "List the prices of a promotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if err := validateOutput(output); err != nil {
			return err
		}

		prices, err := GetClient().ListPrices(args[0])
		if err != nil {
			return err
		}
		if output != outputText {
			return writeStructured(cmd.OutOrStdout(), output, prices)
		}
		return printPrices(prices)
	},
}

var pricesAddCmd = &cobra.Command{
	Use:     "add <slug>",
	Short:   "Add a price to a promotion",
	Args:    cobra.ExactArgs(1),
	Example: `  promoadmin-cli promotions prices add summer --field amount=12.5 --field currency=USD`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readDocument(cmd)
		if err != nil {
			return err
		}

		prices, err := GetClient().AddPrice(args[0], body)
		if err != nil {
			return err
		}
		pterm.Success.Println("Price added")
		return printPrices(prices)
	},
}

var pricesDeleteCmd = &cobra.Command{
	Use:   "delete <price-id>",
	Short: "Delete a price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		confirmed, err := confirmDeletion(cmd, fmt.Sprintf("price '%s'", id))
		if err != nil || !confirmed {
			return err
		}

		if _, err := GetClient().DeletePrice(id); err != nil {
			return err
		}
		pterm.Success.Printf("Price deleted: %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promotionCmd)

	promotionCmd.AddCommand(newListCmd(consts.ResourcePromotions))
	promotionCmd.AddCommand(promotionGetCmd)
	promotionCmd.AddCommand(newApprovalCmd(true))
	promotionCmd.AddCommand(newApprovalCmd(false))
	promotionCmd.AddCommand(promotionFinishCmd)

	promotionCmd.AddCommand(promotionCreateCmd)
	promotionCreateCmd.Flags().String("page", "", "Slug of the page the promotion belongs to")
	_ = promotionCreateCmd.MarkFlagRequired("page")
	addDocumentFlags(promotionCreateCmd)

	promotionCmd.AddCommand(pricesCmd)
	pricesCmd.AddCommand(pricesListCmd, pricesAddCmd, pricesDeleteCmd)
	pricesListCmd.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
	addDocumentFlags(pricesAddCmd)
	pricesDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	promotionCmd.AddCommand(promotionDeleteCmd)
	promotionDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
