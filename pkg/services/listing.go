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

package services

import (
	"context"
	"log/slog"
	"maps"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/conn"
	"github.com/masteryyh/promoadmin/pkg/consts"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/remote"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/samber/lo"
)

// PaginationSettings yields the current pagination config. *config.ConfigManager
// implements it and keeps it fresh across config reloads.
type PaginationSettings interface {
	Pagination() config.PaginationConfig
}

type listingTarget struct {
	client *remote.Client
	path   string
}

type ListingService struct {
	targets      map[string]listingTarget
	settings     PaginationSettings
	imageBaseURL string
}

var (
	listingService *ListingService
	listingOnce    sync.Once
)

func NewListingService(promotions, auth *remote.Client, settings PaginationSettings, imageBaseURL string) *ListingService {
	return &ListingService{
		targets: map[string]listingTarget{
			consts.ResourcePromotions: {client: promotions, path: consts.PromotionsAdminPath},
			consts.ResourcePages:      {client: promotions, path: consts.PagesPath},
			consts.ResourceCurrencies: {client: promotions, path: consts.CurrenciesPath},
			consts.ResourceUsers:      {client: auth, path: consts.UsersPath},
		},
		settings:     settings,
		imageBaseURL: imageBaseURL,
	}
}

func GetListingService() *ListingService {
	listingOnce.Do(func() {
		listingService = NewListingService(
			conn.GetPromotionsClient(),
			conn.GetAuthClient(),
			config.GetConfigManager(),
			conn.GetStorageBaseURL(),
		)
	})
	return listingService
}

// List fetches one page of resource and decorates it for display: every doc
// gets its absolute position, and the page carries the paginator window and
// the URL that page numbers are appended to.
func (s *ListingService) List(ctx context.Context, resource string, request *pagination.PageRequest, requestURI string) (*models.ListingDto, error) {
	target, ok := s.targets[resource]
	if !ok {
		return nil, customerrors.ErrNotFound
	}

	settings := s.settings.Pagination()
	request.ApplyLimits(settings.DefaultLimit, settings.MaxLimit)

	query := forwardedQuery(requestURI)
	query.Set("page", strconv.Itoa(request.Page))
	query.Set("limit", strconv.Itoa(request.PageSize))

	var page models.RemotePage
	if err := target.client.Get(ctx, target.path, query, &page); err != nil {
		slog.ErrorContext(ctx, "failed to list resource", "error", err, "resource", resource, "page", request.Page)
		return nil, err
	}

	if page.Page <= 0 {
		page.Page = request.Page
	}
	if page.Limit <= 0 {
		page.Limit = request.PageSize
	}
	if page.TotalPages <= 0 {
		page.TotalPages = pagination.TotalPages(page.TotalDocs, page.Limit)
	}

	docs := lo.Map(page.Docs, func(doc models.Document, i int) models.Document {
		numbered := maps.Clone(doc)
		if numbered == nil {
			numbered = models.Document{}
		}
		numbered["position"] = pagination.Position(page.Page, page.Limit, i)
		if image, ok := numbered["displayImage"]; ok {
			numbered["displayImage"] = prefixImage(s.imageBaseURL, image)
		}
		return numbered
	})

	listing := &models.ListingDto{
		PagedResponse: pagination.PagedResponse[models.Document]{
			Docs:       docs,
			TotalDocs:  page.TotalDocs,
			Limit:      page.Limit,
			Page:       page.Page,
			TotalPages: page.TotalPages,
		},
		Resource:     resource,
		HasPrevPage:  page.HasPrevPage,
		HasNextPage:  page.HasNextPage,
		PrevPage:     page.PrevPage,
		NextPage:     page.NextPage,
		VisiblePages: pagination.VisiblePages(page.Page, page.TotalPages, settings.Options()),
		CurrentURL:   pagination.CurrentURL(requestURI),
	}
	if page.HasPrevPage && page.PrevPage != nil {
		listing.PrevURL = pagination.PageURL(requestURI, *page.PrevPage)
	}
	if page.HasNextPage && page.NextPage != nil {
		listing.NextURL = pagination.PageURL(requestURI, *page.NextPage)
	}
	return listing, nil
}

// forwardedQuery keeps the caller's filters; paging parameters are set by List.
func forwardedQuery(requestURI string) url.Values {
	_, rawQuery, _ := strings.Cut(requestURI, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return url.Values{}
	}
	query.Del("page")
	query.Del("limit")
	query.Del("strict")
	return query
}

// prefixImage turns relative image paths into URLs on the storage service.
// Images come either as a single path or as a set of sized variants.
func prefixImage(baseURL string, image any) any {
	if baseURL == "" {
		return image
	}

	switch v := image.(type) {
	case string:
		if v == "" || strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return v
		}
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(v, "/")
	case map[string]any:
		return lo.MapValues(v, func(value any, _ string) any {
			return prefixImage(baseURL, value)
		})
	case []any:
		return lo.Map(v, func(value any, _ int) any {
			return prefixImage(baseURL, value)
		})
	default:
		return image
	}
}
