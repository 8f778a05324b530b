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
	"github.com/masteryyh/promoadmin/pkg/services"
	"github.com/masteryyh/promoadmin/pkg/utils/response"
)

type PageRoutes struct {
	service *services.PageService
}

var (
	pageRoutes *PageRoutes
	pageOnce   sync.Once
)

func GetPageRoutes() *PageRoutes {
	pageOnce.Do(func() {
		pageRoutes = &PageRoutes{
			service: services.GetPageService(),
		}
	})
	return pageRoutes
}

func (r *PageRoutes) RegisterRoutes(router *gin.RouterGroup) {
	pageGroup := router.Group("/pages")
	{
		pageGroup.POST("", r.CreatePage)
		pageGroup.GET("/:slug", r.GetPage)
		pageGroup.POST("/:slug/promotions", r.CreatePromotion)
	}
}

func (r *PageRoutes) GetPage(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}

	page, err := r.service.GetPage(c, slug)
	if err != nil {
		response.Failed(c, err)
		return
	}
	response.OK(c, page)
}

func (r *PageRoutes) CreatePage(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}

	page, err := r.service.CreatePage(c, body)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "create page", "slug", page["slug"])
	response.OK(c, page)
}

func (r *PageRoutes) CreatePromotion(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	body, ok := bindDocument(c)
	if !ok {
		return
	}

	promotion, err := r.service.CreatePromotion(c, slug, body)
	if err != nil {
		response.Failed(c, err)
		return
	}
	audit(c, "create promotion", "page", slug, "slug", promotion.Slug)
	response.OK(c, promotion)
}
