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
	"net/url"
	"sync"

	"github.com/masteryyh/promoadmin/pkg/conn"
	"github.com/masteryyh/promoadmin/pkg/consts"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/remote"
)

type PromotionService struct {
	client       *remote.Client
	imageBaseURL string
}

var (
	promotionService *PromotionService
	promotionOnce    sync.Once
)

func NewPromotionService(client *remote.Client, imageBaseURL string) *PromotionService {
	return &PromotionService{
		client:       client,
		imageBaseURL: imageBaseURL,
	}
}

func GetPromotionService() *PromotionService {
	promotionOnce.Do(func() {
		promotionService = NewPromotionService(conn.GetPromotionsClient(), conn.GetStorageBaseURL())
	})
	return promotionService
}

func promotionPath(slug string) string {
	return consts.PromotionsPath + "/" + url.PathEscape(slug)
}

func (s *PromotionService) toDto(p *models.Promotion, slug string) *models.PromotionDto {
	if p.Slug == "" {
		p.Slug = slug
	}
	p.DisplayImage = prefixImage(s.imageBaseURL, p.DisplayImage)
	return p.ToDto()
}

func (s *PromotionService) GetPromotion(ctx context.Context, slug string) (*models.PromotionDto, error) {
	var promotion models.Promotion
	if err := s.client.Get(ctx, promotionPath(slug), url.Values{"admin": {"true"}}, &promotion); err != nil {
		slog.ErrorContext(ctx, "failed to get promotion", "error", err, "slug", slug)
		return nil, err
	}
	return s.toDto(&promotion, slug), nil
}

// DeletePromotion returns the promotion as it was before deletion.
func (s *PromotionService) DeletePromotion(ctx context.Context, slug string) (*models.PromotionDto, error) {
	var promotion models.Promotion
	if err := s.client.Delete(ctx, promotionPath(slug), &promotion); err != nil {
		slog.ErrorContext(ctx, "failed to delete promotion", "error", err, "slug", slug)
		return nil, err
	}
	slog.InfoContext(ctx, "promotion deleted", "slug", slug)
	return s.toDto(&promotion, slug), nil
}

func (s *PromotionService) SetApproval(ctx context.Context, slug string, approved bool) (*models.PromotionDto, error) {
	var promotion models.Promotion
	body := &models.ApprovalDto{Approved: approved}
	if err := s.client.Put(ctx, promotionPath(slug)+consts.PromotionApproveAction, body, &promotion); err != nil {
		slog.ErrorContext(ctx, "failed to change promotion approval", "error", err, "slug", slug, "approved", approved)
		return nil, err
	}
	slog.InfoContext(ctx, "promotion approval changed", "slug", slug, "approved", approved)
	return s.toDto(&promotion, slug), nil
}

// FinishPromotion marks the setup of a promotion as complete. The promotion is
// read back afterwards since the update answer is not guaranteed to carry it.
func (s *PromotionService) FinishPromotion(ctx context.Context, slug string) (*models.PromotionDto, error) {
	body := &models.StepDto{Step: consts.PromotionStepFinished}
	if err := s.client.Put(ctx, promotionPath(slug), body, nil); err != nil {
		slog.ErrorContext(ctx, "failed to finish promotion", "error", err, "slug", slug)
		return nil, err
	}
	return s.GetPromotion(ctx, slug)
}

// ListPrices returns a promotion together with its prices.
func (s *PromotionService) ListPrices(ctx context.Context, slug string) (*models.PricesDto, error) {
	promotion, err := s.GetPromotion(ctx, slug)
	if err != nil {
		return nil, err
	}

	var prices models.PriceList
	if err := s.client.Get(ctx, promotionPath(slug)+consts.PromotionPricesAction, nil, &prices); err != nil {
		slog.ErrorContext(ctx, "failed to list promotion prices", "error", err, "slug", slug)
		return nil, err
	}
	if prices == nil {
		prices = models.PriceList{}
	}
	return &models.PricesDto{Promotion: promotion, Prices: prices}, nil
}

// AddPrice adds a price to a promotion and returns the updated price list.
// Rejected prices come back as ErrUpstreamRejected with the offending fields.
func (s *PromotionService) AddPrice(ctx context.Context, slug string, price models.Document) (*models.PricesDto, error) {
	if err := s.client.Post(ctx, promotionPath(slug)+consts.PromotionAddPriceAction, price, nil); err != nil {
		slog.ErrorContext(ctx, "failed to add promotion price", "error", err, "slug", slug)
		return nil, err
	}
	slog.InfoContext(ctx, "promotion price added", "slug", slug)
	return s.ListPrices(ctx, slug)
}

// DeletePrice returns the price as it was before deletion.
func (s *PromotionService) DeletePrice(ctx context.Context, id string) (models.Document, error) {
	var price models.Document
	if err := s.client.Delete(ctx, consts.PricesPath+"/"+url.PathEscape(id), &price); err != nil {
		slog.ErrorContext(ctx, "failed to delete price", "error", err, "id", id)
		return nil, err
	}
	slog.InfoContext(ctx, "price deleted", "id", id)
	if price == nil {
		price = models.Document{"_id": id}
	}
	return price, nil
}
