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
	"sync"

	"github.com/masteryyh/promoadmin/pkg/conn"
	"github.com/masteryyh/promoadmin/pkg/consts"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/remote"
)

// promotionPageField links a new promotion to the page it is created from.
const promotionPageField = "page"

type PageService struct {
	client       *remote.Client
	promotions   *PromotionService
	imageBaseURL string
}

var (
	pageService *PageService
	pageOnce    sync.Once
)

func NewPageService(client *remote.Client, promotions *PromotionService, imageBaseURL string) *PageService {
	return &PageService{
		client:       client,
		promotions:   promotions,
		imageBaseURL: imageBaseURL,
	}
}

func GetPageService() *PageService {
	pageOnce.Do(func() {
		pageService = NewPageService(conn.GetPromotionsClient(), GetPromotionService(), conn.GetStorageBaseURL())
	})
	return pageService
}

func pagePath(slug string) string {
	return consts.PagesPath + "/" + url.PathEscape(slug)
}

func (s *PageService) toDto(page models.Document) models.Document {
	if page == nil {
		return models.Document{}
	}
	if image, ok := page["displayImage"]; ok {
		page["displayImage"] = prefixImage(s.imageBaseURL, image)
	}
	return page
}

func (s *PageService) GetPage(ctx context.Context, slug string) (models.Document, error) {
	var page models.Document
	if err := s.client.Get(ctx, pagePath(slug), nil, &page); err != nil {
		slog.ErrorContext(ctx, "failed to get page", "error", err, "slug", slug)
		return nil, err
	}
	return s.toDto(page), nil
}

// CreatePage forwards page to the promotions service, which owns validation.
func (s *PageService) CreatePage(ctx context.Context, page models.Document) (models.Document, error) {
	var created models.Document
	if err := s.client.Post(ctx, consts.PagesPath, page, &created); err != nil {
		slog.ErrorContext(ctx, "failed to create page", "error", err)
		return nil, err
	}
	slog.InfoContext(ctx, "page created", "slug", created["slug"])
	return s.toDto(created), nil
}

// CreatePromotion creates a promotion on the page identified by pageSlug. The
// page must exist; its id is filled in when promotion does not name a page.
func (s *PageService) CreatePromotion(ctx context.Context, pageSlug string, promotion models.Document) (*models.PromotionDto, error) {
	page, err := s.GetPage(ctx, pageSlug)
	if err != nil {
		return nil, err
	}

	body := maps.Clone(promotion)
	if body == nil {
		body = models.Document{}
	}
	if _, ok := body[promotionPageField]; !ok {
		if id, ok := page["_id"]; ok {
			body[promotionPageField] = id
		} else {
			body[promotionPageField] = pageSlug
		}
	}

	var created models.Promotion
	if err := s.client.Post(ctx, consts.PromotionsPath, body, &created); err != nil {
		slog.ErrorContext(ctx, "failed to create promotion", "error", err, "page", pageSlug)
		return nil, err
	}
	slog.InfoContext(ctx, "promotion created", "slug", created.Slug, "page", pageSlug)
	return s.promotions.toDto(&created, created.Slug), nil
}
