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

type CurrencyService struct {
	client *remote.Client
}

var (
	currencyService *CurrencyService
	currencyOnce    sync.Once
)

func NewCurrencyService(client *remote.Client) *CurrencyService {
	return &CurrencyService{client: client}
}

func GetCurrencyService() *CurrencyService {
	currencyOnce.Do(func() {
		currencyService = NewCurrencyService(conn.GetPromotionsClient())
	})
	return currencyService
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, currency models.Document) (models.Document, error) {
	var created models.Document
	if err := s.client.Post(ctx, consts.CurrenciesPath, currency, &created); err != nil {
		slog.ErrorContext(ctx, "failed to create currency", "error", err)
		return nil, err
	}
	slog.InfoContext(ctx, "currency created", "acronym", created["acronym"])
	if created == nil {
		created = models.Document{}
	}
	return created, nil
}

// DeleteCurrency returns the currency as it was before deletion.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, acronym string) (models.Document, error) {
	var deleted models.Document
	if err := s.client.Delete(ctx, consts.CurrenciesPath+"/"+url.PathEscape(acronym), &deleted); err != nil {
		slog.ErrorContext(ctx, "failed to delete currency", "error", err, "acronym", acronym)
		return nil, err
	}
	slog.InfoContext(ctx, "currency deleted", "acronym", acronym)
	if deleted == nil {
		deleted = models.Document{"acronym": acronym}
	}
	return deleted, nil
}
