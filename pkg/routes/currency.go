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

package routes

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
	"github.com/masteryyh/promoadmin/pkg/services"
	"github.com/masteryyh/promoadmin/pkg/utils/response"
)

type CurrencyRoutes struct {
	service *services.CurrencyService
}

var (
	currencyRoutes *CurrencyRoutes
	currencyOnce   sync.Once
)

func GetCurrencyRoutes() *CurrencyRoutes {
	currencyOnce.Do(func() {
		currencyRoutes = &CurrencyRoutes{
			service: services.GetCurrencyService(),
		}
	})
	return currencyRoutes
}

func (r *CurrencyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	currencyGroup := router.Group("/currencies")
	{
		currencyGroup.POST("", r.CreateCurrency)
		currencyGroup.DELETE("/:acronym", r.DeleteCurrency)
	}
}

type acronymParam struct {
	Acronym string `uri:"acronym" binding:"required,slug"`
}

func (r *CurrencyRoutes) CreateCurrency(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}

	currency, err := r.service.CreateCurrency(c, body)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "create currency", "acronym", currency["acronym"])
	response.OK(c, currency)
}

func (r *CurrencyRoutes) DeleteCurrency(c *gin.Context) {
	var param acronymParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}

	currency, err := r.service.DeleteCurrency(c, param.Acronym)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "delete currency", "acronym", param.Acronym)
	response.OK(c, currency)
}
