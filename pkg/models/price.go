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

import (
	json "github.com/bytedance/sonic"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
)

// PriceList is the set of prices of one promotion. The promotions service
// answers with either a bare array or a paged envelope.
type PriceList []Document

func (l *PriceList) UnmarshalJSON(data []byte) error {
	var docs []Document
	if err := json.Unmarshal(data, &docs); err == nil {
		*l = docs
		return nil
	}

	var page pagination.PagedResponse[Document]
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	*l = page.Docs
	return nil
}

type PricesDto struct {
	Promotion *PromotionDto `json:"promotion"`
	Prices    PriceList     `json:"prices"`
}
