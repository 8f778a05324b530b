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

package pagination

import (
	"math"
	"slices"
)

const (
	// windowSpan is the number of page links shown on each side of the current page.
	windowSpan = 2
	windowSize = 2*windowSpan + 1
)

// Options controls the boundary behavior of the page window.
type Options struct {
	// StrictOverflowCompensation makes the window offer earlier pages when it runs
	// past the last page. When false, overflowing slots are simply left out, which
	// is how the paginator has always rendered.
	StrictOverflowCompensation bool `json:"strictOverflowCompensation" mapstructure:"strictOverflowCompensation"`
}

// VisiblePages returns the ascending page numbers to render as links for page
// out of totalPages. At most five numbers are returned, all within [1, totalPages].
//
// Pages below 1 render like page 1, and pages within windowSpan of math.MaxInt
// render like math.MaxInt-windowSpan. Negative totals count as zero.
func VisiblePages(page, totalPages int, opts Options) []int {
	page = min(max(page, 1), math.MaxInt-windowSpan)
	totalPages = max(totalPages, 0)

	window := candidateWindow(page)
	normalized := normalizeLow(window)
	return clampHigh(normalized, totalPages, opts)
}

func candidateWindow(page int) [windowSize]int {
	var window [windowSize]int
	for i := range window {
		window[i] = page - windowSpan + i
	}
	return window
}

// normalizeLow moves every non-positive candidate past the largest one so the
// window keeps its size near page 1.
func normalizeLow(window [windowSize]int) [windowSize]int {
	sorted := window
	slices.Sort(sorted[:])
	highest := sorted[windowSize-1]

	var normalized [windowSize]int
	for i, v := range sorted {
		if v <= 0 {
			normalized[i] = highest - v + 1
		} else {
			normalized[i] = v
		}
	}
	slices.Sort(normalized[:])
	return normalized
}

// clampHigh drops candidates beyond totalPages. In strict mode each dropped
// candidate is replaced by the page the same distance below the window, if any.
func clampHigh(window [windowSize]int, totalPages int, opts Options) []int {
	lowest := window[0]

	visible := make([]int, 0, windowSize)
	for _, v := range window {
		if v <= totalPages {
			visible = append(visible, v)
			continue
		}
		n := lowest - (v - totalPages)
		if n > 0 && opts.StrictOverflowCompensation {
			visible = append(visible, n)
		}
	}

	slices.Sort(visible)
	return slices.Compact(visible)
}
