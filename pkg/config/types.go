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

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
)

// AppConfig is the config definition for this app
type AppConfig struct {
	// Debug mode enabled or not
	Debug bool `mapstructure:"debug"`

	// Port of the HTTP server
	Port int `mapstructure:"port"`

	// Auth configuration for HTTP Basic Auth
	Auth *AuthConfig `mapstructure:"auth"`

	// Upstreams are the remote services this app fronts
	Upstreams *UpstreamsConfig `mapstructure:"upstreams"`

	// Pagination controls list sizes and the paginator window
	Pagination *PaginationConfig `mapstructure:"pagination"`
}

// AuthConfig is the config definition for HTTP Basic Auth
type AuthConfig struct {
	// Enabled indicates whether HTTP Basic Auth is enabled
	Enabled bool `mapstructure:"enabled"`

	// Username for HTTP Basic Auth
	Username string `mapstructure:"username"`

	// Password for HTTP Basic Auth
	Password string `mapstructure:"password"`
}

type UpstreamsConfig struct {
	// Promotions serves promotions, pages, currencies and prices
	Promotions *UpstreamConfig `mapstructure:"promotions"`

	// Auth serves users and admins
	Auth *UpstreamConfig `mapstructure:"auth"`

	// Storage serves uploaded images
	Storage *UpstreamConfig `mapstructure:"storage"`
}

// UpstreamConfig describes a single remote HTTP service
type UpstreamConfig struct {
	// BaseURL of the service, without trailing slash
	BaseURL string `mapstructure:"baseUrl"`

	// Token is sent as a bearer token on every request, optional
	Token string `mapstructure:"token"`

	// Timeout of a single request
	Timeout time.Duration `mapstructure:"timeout"`

	// Retries is the number of attempts for idempotent requests
	Retries uint `mapstructure:"retries"`
}

type PaginationConfig struct {
	// DefaultLimit is the page size used when a request does not ask for one
	DefaultLimit int `mapstructure:"defaultLimit"`

	// MaxLimit caps the page size a request may ask for
	MaxLimit int `mapstructure:"maxLimit"`

	// StrictOverflowCompensation, see pagination.Options
	StrictOverflowCompensation bool `mapstructure:"strictOverflowCompensation"`
}

func (c *PaginationConfig) Options() pagination.Options {
	if c == nil {
		return pagination.Options{}
	}
	return pagination.Options{StrictOverflowCompensation: c.StrictOverflowCompensation}
}

func (c *PaginationConfig) Validate() error {
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = pagination.DefaultPageSize
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = pagination.MaxPageSize
	}
	if c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default limit %d exceeds max limit %d", c.DefaultLimit, c.MaxLimit)
	}
	return nil
}

func (c *UpstreamConfig) Validate(required bool) error {
	if c == nil || c.BaseURL == "" {
		if required {
			return fmt.Errorf("base url is required")
		}
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url '%s'", c.BaseURL)
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.Retries == 0 {
		c.Retries = 3
	}
	return nil
}

func (c *UpstreamsConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("upstreams are required")
	}
	if err := c.Promotions.Validate(true); err != nil {
		return fmt.Errorf("invalid promotions upstream: %w", err)
	}
	if err := c.Auth.Validate(true); err != nil {
		return fmt.Errorf("invalid auth upstream: %w", err)
	}
	if err := c.Storage.Validate(false); err != nil {
		return fmt.Errorf("invalid storage upstream: %w", err)
	}
	return nil
}

func (c *AuthConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if c.Username == "" {
		return fmt.Errorf("auth username is required when auth is enabled")
	}
	if c.Password == "" {
		return fmt.Errorf("auth password is required when auth is enabled")
	}
	return nil
}

func (c *AppConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("invalid auth config: %w", err)
	}

	if c.Pagination == nil {
		c.Pagination = &PaginationConfig{}
	}
	if err := c.Pagination.Validate(); err != nil {
		return fmt.Errorf("invalid pagination config: %w", err)
	}

	return c.Upstreams.Validate()
}
