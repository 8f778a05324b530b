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
	"maps"
	"os"
	"slices"
	"strings"

	json "github.com/bytedance/sonic"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// parseFields turns key=value pairs into a document. Values that parse as JSON
// keep their type, so amount=12.5 is a number and name=Shop stays a string.
func parseFields(raw []string) (models.Document, error) {
	doc := models.Document{}
	for _, f := range raw {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field '%s', expected key=value", f)
		}
		var typed any
		if err := json.UnmarshalString(value, &typed); err != nil {
			typed = value
		}
		doc[key] = typed
	}
	return doc, nil
}

func readDocumentFile(path string) (models.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc models.Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if doc == nil {
		doc = models.Document{}
	}
	return doc, nil
}

// readDocument builds a request body from --file, then applies --field on top.
func readDocument(cmd *cobra.Command) (models.Document, error) {
	file, _ := cmd.Flags().GetString("file")
	rawFields, _ := cmd.Flags().GetStringArray("field")

	doc := models.Document{}
	if file != "" {
		fromFile, err := readDocumentFile(file)
		if err != nil {
			return nil, err
		}
		doc = fromFile
	}

	fields, err := parseFields(rawFields)
	if err != nil {
		return nil, err
	}
	maps.Copy(doc, fields)

	if len(doc) == 0 {
		return nil, fmt.Errorf("nothing to send, pass --field key=value or --file")
	}
	return doc, nil
}

func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("field", nil, "Field to send, as key=value (repeatable)")
	cmd.Flags().StringP("file", "f", "", "JSON or YAML file with the fields to send")
}

// documentsTable lays out documents with one column per field seen in any of them.
func documentsTable(docs []models.Document) pterm.TableData {
	seen := map[string]struct{}{}
	for _, doc := range docs {
		for key := range doc {
			seen[key] = struct{}{}
		}
	}
	fields := slices.Sorted(maps.Keys(seen))

	tableData := pterm.TableData{fields}
	for _, doc := range docs {
		row := make([]string, 0, len(fields))
		for _, field := range fields {
			row = append(row, docField(doc, field))
		}
		tableData = append(tableData, row)
	}
	return tableData
}

func printDocument(doc models.Document) error {
	tableData := pterm.TableData{}
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		tableData = append(tableData, []string{key, docField(doc, key)})
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}

// confirmDeletion asks before deleting unless --yes is set.
func confirmDeletion(cmd *cobra.Command, what string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	if !isTerminal(os.Stdin) {
		return false, fmt.Errorf("refusing to delete without confirmation, pass --yes")
	}
	confirm, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete %s?", what))
	if err != nil {
		return false, err
	}
	if !confirm {
		pterm.Info.Println("Cancelled")
	}
	return confirm, nil
}
