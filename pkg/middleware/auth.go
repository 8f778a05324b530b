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

package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/utils/response"
)

const adminUserKey = "adminUser"

// AdminAuthMiddleware gates the admin API behind HTTP Basic Auth when enabled.
func AdminAuthMiddleware(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg == nil || !cfg.Enabled {
			c.Next()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, "authorization required")
			return
		}

		usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1
		passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1

		if !usernameMatch || !passwordMatch {
			slog.WarnContext(c, "rejected admin credentials", "username", username, "requestId", GetRequestID(c))
			unauthorized(c, "invalid username or password")
			return
		}

		c.Set(adminUserKey, username)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Basic realm="Authorization Required"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewGenericResponse(http.StatusUnauthorized, message, nil))
}

// GetAdminUser returns the authenticated admin, empty when auth is disabled.
func GetAdminUser(c *gin.Context) string {
	return c.GetString(adminUserKey)
}
