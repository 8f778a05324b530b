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
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/masteryyh/promoadmin/pkg/utils/response"
)

// maxPageNumber keeps page arithmetic far away from int overflow.
const maxPageNumber = 1_000_000_000

type PaginatorRoutes struct {
	service *services.PaginatorService
}

var (
	paginatorRoutes *PaginatorRoutes
	paginatorOnce   sync.Once
)

func GetPaginatorRoutes() *PaginatorRoutes {
	paginatorOnce.Do(func() {
		paginatorRoutes = &PaginatorRoutes{
			service: services.GetPaginatorService(),
		}
	})
	return paginatorRoutes
}

func (r *PaginatorRoutes) RegisterRoutes(router *gin.RouterGroup) {
	paginatorGroup := router.Group("/paginator")
	{
		paginatorGroup.GET("", r.GetWindow)
		paginatorGroup.POST("", r.Paginate)
	}
}

type windowQuery struct {
	Page       int   `form:"page" binding:"required,min=1,max=1000000000"`
	TotalPages int   `form:"totalPages" binding:"min=0,max=1000000000"`
	Strict     *bool `form:"strict"`
}

type strictQuery struct {
	Strict *bool `form:"strict"`
}

func (r *PaginatorRoutes) GetWindow(c *gin.Context) {
	var query windowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}

	result := r.service.Paginate(c, pagination.Request{
		Page:       query.Page,
		TotalPages: query.TotalPages,
	}, query.Strict)
	response.OK(c, result)
}

// Paginate accepts any pagination object with page and totalPages and echoes
// it back, extra fields included, with its visible pages.
func (r *PaginatorRoutes) Paginate(c *gin.Context) {
	var query strictQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}

	var req pagination.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}
	if req.Page < 1 || req.Page > maxPageNumber || req.TotalPages < 0 || req.TotalPages > maxPageNumber {
		response.Failed(c, customerrors.ErrInvalidParams)
		return
	}

	response.OK(c, r.service.Paginate(c, req, query.Strict))
}
