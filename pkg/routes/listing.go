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
	"github.com/masteryyh/promoadmin/pkg/consts"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
	"github.com/masteryyh/promoadmin/pkg/services"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/masteryyh/promoadmin/pkg/utils/response"
)

type ListingRoutes struct {
	service *services.ListingService
}

var (
	listingRoutes *ListingRoutes
	listingOnce   sync.Once
)

func GetListingRoutes() *ListingRoutes {
	listingOnce.Do(func() {
		listingRoutes = &ListingRoutes{
			service: services.GetListingService(),
		}
	})
	return listingRoutes
}

func (r *ListingRoutes) RegisterRoutes(router *gin.RouterGroup) {
	for _, resource := range []string{
		consts.ResourcePromotions,
		consts.ResourcePages,
		consts.ResourceCurrencies,
		consts.ResourceUsers,
	} {
		router.GET("/"+resource, r.List(resource))
	}
}

func (r *ListingRoutes) List(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pageRequest pagination.PageRequest
		if err := c.ShouldBindQuery(&pageRequest); err != nil {
			response.Failed(c, customerrors.ErrInvalidParams)
			return
		}

		listing, err := r.service.List(c, resource, &pageRequest, c.Request.RequestURI)
		if err != nil {
			response.Failed(c, err)
			return
		}
		response.OK(c, listing)
	}
}
