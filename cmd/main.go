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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/conn"
	"github.com/masteryyh/promoadmin/pkg/middleware"
	"github.com/masteryyh/promoadmin/pkg/routes"
	"github.com/masteryyh/promoadmin/pkg/utils/safe"
	"github.com/masteryyh/promoadmin/pkg/utils/signal"
)

const shutdownTimeout = 10 * time.Second

func main() {
	slog.Info("starting promoadmin server...")

	slog.Info("loading configuration...")
	if err := config.Init(); err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	cm := config.GetConfigManager()
	cfg := cm.GetConfig()

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	baseCtx, cancel := signal.SetupContext()
	defer cancel()

	cm.Watch(baseCtx)

	conn.InitUpstreams(baseCtx, cfg.Upstreams)

	engine := gin.New()
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.RequestLogger())

	v1Group := engine.Group("/api/v1")
	v1Group.GET("/healthz", routes.Healthz)

	protected := v1Group.Group("", middleware.AdminAuthMiddleware(cfg.Auth))
	if err := routes.GetV1Routes().RegisterRoutes(protected); err != nil {
		slog.ErrorContext(baseCtx, "failed to register routes", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: engine,
	}

	safe.GoSafeWithCtx("http-server", baseCtx, func(ctx context.Context) {
		slog.InfoContext(ctx, "starting http server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start http server", "error", err)
			cancel()
		}
	})

	<-baseCtx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down http server", "error", err)
	}
}
