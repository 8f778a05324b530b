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

type PromotionRoutes struct {
	service *services.PromotionService
}

var (
	promotionRoutes *PromotionRoutes
	promotionOnce   sync.Once
)

func GetPromotionRoutes() *PromotionRoutes {
	promotionOnce.Do(func() {
		promotionRoutes = &PromotionRoutes{
			service: services.GetPromotionService(),
		}
	})
	return promotionRoutes
}

func (r *PromotionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	promotionGroup := router.Group("/promotions")
	{
		promotionGroup.GET("/:slug", r.GetPromotion)
		promotionGroup.DELETE("/:slug", r.DeletePromotion)
		promotionGroup.PUT("/:slug/approve", r.SetApproval(true))
		promotionGroup.PUT("/:slug/disapprove", r.SetApproval(false))
		promotionGroup.PUT("/:slug/finish", r.FinishPromotion)
		promotionGroup.GET("/:slug/prices", r.ListPrices)
		promotionGroup.POST("/:slug/prices", r.AddPrice)
	}
	router.DELETE("/prices/:id", r.DeletePrice)
}

type slugParam struct {
	Slug string `uri:"slug" binding:"required,slug"`
}

type idParam struct {
	ID string `uri:"id" binding:"required,slug"`
}

func bindSlug(c *gin.Context) (string, bool) {
	var param slugParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return "", false
	}
	return param.Slug, true
}

func (r *PromotionRoutes) GetPromotion(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}

	promotion, err := r.service.GetPromotion(c, slug)
	if err != nil {
		response.Failed(c, err)
		return
	}
	response.OK(c, promotion)
}

func (r *PromotionRoutes) DeletePromotion(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}

	promotion, err := r.service.DeletePromotion(c, slug)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "delete promotion", "slug", slug)
	response.OK(c, promotion)
}

func (r *PromotionRoutes) SetApproval(approved bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, ok := bindSlug(c)
		if !ok {
			return
		}

		promotion, err := r.service.SetApproval(c, slug, approved)
		if err != nil {
			response.Failed(c, err)
			return
		}
		audit(c, "set promotion approval", "slug", slug, "approved", approved)
		response.OK(c, promotion)
	}
}

func (r *PromotionRoutes) FinishPromotion(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}

	promotion, err := r.service.FinishPromotion(c, slug)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "finish promotion", "slug", slug)
	response.OK(c, promotion)
}

func (r *PromotionRoutes) ListPrices(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}

	prices, err := r.service.ListPrices(c, slug)
	if err != nil {
		response.Failed(c, err)
		return
	}
	response.OK(c, prices)
}

func (r *PromotionRoutes) AddPrice(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	price, ok := bindDocument(c)
	if !ok {
		return
	}

	prices, err := r.service.AddPrice(c, slug, price)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "add price", "slug", slug)
	response.OK(c, prices)
}

func (r *PromotionRoutes) DeletePrice(c *gin.Context) {
	var param idParam
	if err := c.ShouldBindUri(&param); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}

	price, err := r.service.DeletePrice(c, param.ID)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "delete price", "id", param.ID)
	response.OK(c, price)
}
