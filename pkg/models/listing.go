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

package models

import "github.com/masteryyh/promoadmin/pkg/utils/pagination"

// Document is a record as returned by a remote service. Its schema belongs to
// that service, so it is kept as a loose map.
type Document map[string]any

// RemotePage is the paged list envelope used by the promotions and auth services.
type RemotePage struct {
	pagination.PagedResponse[Document]
	HasPrevPage bool `json:"hasPrevPage"`
	HasNextPage bool `json:"hasNextPage"`
	PrevPage    *int `json:"prevPage"`
	NextPage    *int `json:"nextPage"`
}

type ListingDto struct {
	pagination.PagedResponse[Document]
	Resource     string `json:"resource"`
	HasPrevPage  bool   `json:"hasPrevPage"`
	HasNextPage  bool   `json:"hasNextPage"`
	PrevPage     *int   `json:"prevPage,omitempty"`
	NextPage     *int   `json:"nextPage,omitempty"`
	PrevURL      string `json:"prevUrl,omitempty"`
	NextURL      string `json:"nextUrl,omitempty"`
	VisiblePages []int  `json:"visiblePages"`
	CurrentURL   string `json:"currentUrl"`
}
