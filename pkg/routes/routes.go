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
	"log/slog"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
	"github.com/masteryyh/promoadmin/pkg/middleware"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/utils/response"
)

var slugRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

type V1Routes struct {
	paginatorRoutes *PaginatorRoutes
	listingRoutes   *ListingRoutes
	promotionRoutes *PromotionRoutes
	pageRoutes      *PageRoutes
	currencyRoutes  *CurrencyRoutes
}

var (
	v1Routes *V1Routes
	v1Once   sync.Once
)

func GetV1Routes() *V1Routes {
	v1Once.Do(func() {
		v1Routes = &V1Routes{
			paginatorRoutes: GetPaginatorRoutes(),
			listingRoutes:   GetListingRoutes(),
			promotionRoutes: GetPromotionRoutes(),
			pageRoutes:      GetPageRoutes(),
			currencyRoutes:  GetCurrencyRoutes(),
		}
	})
	return v1Routes
}

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRegex.MatchString(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *V1Routes) RegisterRoutes(routerGroup *gin.RouterGroup) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.paginatorRoutes.RegisterRoutes(routerGroup)
	r.listingRoutes.RegisterRoutes(routerGroup)
	r.promotionRoutes.RegisterRoutes(routerGroup)
	r.pageRoutes.RegisterRoutes(routerGroup)
	r.currencyRoutes.RegisterRoutes(routerGroup)
	return nil
}

// bindDocument reads a JSON object body. Its fields are validated by the
// remote service, so only an empty or malformed body is refused here.
func bindDocument(c *gin.Context) (models.Document, bool) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil || len(doc) == 0 {
		response.Failed(c, customerrors.ErrInvalidParams)
		return nil, false
	}
	return doc, true
}

// audit logs a change made through the admin API along with who made it.
func audit(c *gin.Context, action string, args ...any) {
	attrs := append([]any{
		"action", action,
		"admin", middleware.GetAdminUser(c),
		"requestId", middleware.GetRequestID(c),
	}, args...)
	slog.InfoContext(c, "admin action", attrs...)
}

// Healthz is served outside of admin auth.
func Healthz(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}
