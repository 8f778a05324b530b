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
	"sync"

	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
)

type PaginatorService struct {
	settings PaginationSettings
}

var (
	paginatorService *PaginatorService
	paginatorOnce    sync.Once
)

func NewPaginatorService(settings PaginationSettings) *PaginatorService {
	return &PaginatorService{settings: settings}
}

func GetPaginatorService() *PaginatorService {
	paginatorOnce.Do(func() {
		paginatorService = NewPaginatorService(config.GetConfigManager())
	})
	return paginatorService
}

// Paginate computes the visible pages of req. strict overrides the configured
// overflow compensation when set.
func (s *PaginatorService) Paginate(ctx context.Context, req pagination.Request, strict *bool) pagination.Result {
	settings := s.settings.Pagination()
	opts := settings.Options()
	if strict != nil {
		opts.StrictOverflowCompensation = *strict
	}

	result := pagination.Paginate(req, opts)
	slog.DebugContext(ctx, "computed page window",
		"page", req.Page,
		"totalPages", req.TotalPages,
		"strict", opts.StrictOverflowCompensation,
		"visiblePages", result.VisiblePages)
	return result
}
