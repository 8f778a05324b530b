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

package conn

import (
	"context"
	"log/slog"
	"sync"

	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/remote"
)

var (
	promotionsClient *remote.Client
	authClient       *remote.Client
	storageBaseURL   string
	upstreamOnce     sync.Once
)

func InitUpstreams(ctx context.Context, cfg *config.UpstreamsConfig) {
	upstreamOnce.Do(func() {
		promotionsClient = remote.NewClientFromConfig(cfg.Promotions)
		authClient = remote.NewClientFromConfig(cfg.Auth)
		if cfg.Storage != nil {
			storageBaseURL = cfg.Storage.BaseURL
		}
		slog.InfoContext(ctx, "upstream clients initialized",
			"promotions", promotionsClient.BaseURL(),
			"auth", authClient.BaseURL(),
			"storage", storageBaseURL)
	})
}

func GetPromotionsClient() *remote.Client {
	if promotionsClient == nil {
		panic("upstreams not initialized, call InitUpstreams first")
	}
	return promotionsClient
}

func GetAuthClient() *remote.Client {
	if authClient == nil {
		panic("upstreams not initialized, call InitUpstreams first")
	}
	return authClient
}

// GetStorageBaseURL is the public prefix of uploaded images, empty when not configured.
func GetStorageBaseURL() string {
	return storageBaseURL
}
