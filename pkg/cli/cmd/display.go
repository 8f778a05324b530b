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
	"os"
	"strconv"
	"strings"

	json "github.com/bytedance/sonic"
	"github.com/pterm/pterm"
	"go.yaml.in/yaml/v3"
	"golang.org/x/term"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	prevMarker = "«"
	nextMarker = "»"
)

// renderPaginator draws a paginator line such as "« 1 2 [3] 4 5 »". The
// arrows appear only when there is a page to move to. highlight styles the
// current page.
func renderPaginator(page, totalPages int, visiblePages []int, highlight func(string) string) string {
	if len(visiblePages) == 0 {
		return ""
	}
	if highlight == nil {
		highlight = func(s string) string { return s }
	}

	parts := make([]string, 0, len(visiblePages)+2)
	if page > 1 {
		parts = append(parts, prevMarker)
	}
	for _, p := range visiblePages {
		label := strconv.Itoa(p)
		if p == page {
			label = highlight("[" + label + "]")
		}
		parts = append(parts, label)
	}
	if page < totalPages {
		parts = append(parts, nextMarker)
	}
	return strings.Join(parts, " ")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func currentPageStyle() func(string) string {
	if !isTerminal(os.Stdout) {
		return nil
	}
	return func(s string) string {
		return pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(s)
	}
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format '%s', expected one of text, json, yaml", format)
	}
}

// writeStructured prints v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case outputJSON:
		data, err = json.ConfigStd.MarshalIndent(v, "", "  ")
	case outputYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported structured format '%s'", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = w.Write([]byte("\n"))
	}
	return err
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
