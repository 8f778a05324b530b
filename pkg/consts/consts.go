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

package consts

// Listable resources
const (
	ResourcePromotions = "promotions"
	ResourcePages      = "pages"
	ResourceCurrencies = "currencies"
	ResourceUsers      = "users"
)

// Upstream paths
const (
	PromotionsAdminPath = "/promotions/admin"
	PromotionsPath      = "/promotions"
	PagesPath           = "/pages"
	CurrenciesPath      = "/currencies"
	PricesPath          = "/prices"
	UsersPath           = "/"
)

// Upstream actions below a promotion
const (
	PromotionPricesAction   = "/prices"
	PromotionAddPriceAction = "/add-price"
	PromotionApproveAction  = "/approve"
)

// Promotion setup steps as stored by the promotions service
const (
	PromotionStepPicture  = 0
	PromotionStepPrices   = 1
	PromotionStepFinished = 2
)
