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

package api

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	username   string
	password   string
}

func NewClient(baseURL string) *Client {
	return NewClientWithAuth(baseURL, "", "")
}

func NewClientWithAuth(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type APIResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    stdjson.RawMessage `json:"data"`
	Details map[string]string  `json:"details"`
}

// APIError is a non-200 code in the response envelope.
type APIError struct {
	Code    int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
	}
	fields := make([]string, 0, len(e.Details))
	for _, field := range slices.Sorted(maps.Keys(e.Details)) {
		fields = append(fields, field+": "+e.Details[field])
	}
	return fmt.Sprintf("API error %d: %s (%s)", e.Code, e.Message, strings.Join(fields, "; "))
}

func (c *Client) doRequest(method, path string, query url.Values, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.username != "" && c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Code != http.StatusOK {
		return nil, &APIError{Code: apiResp.Code, Message: apiResp.Message, Details: apiResp.Details}
	}
	return apiResp.Data, nil
}

func (c *Client) Window(page, totalPages int, strict *bool) (*pagination.Result, error) {
	query := url.Values{
		"page":       {strconv.Itoa(page)},
		"totalPages": {strconv.Itoa(totalPages)},
	}
	if strict != nil {
		query.Set("strict", strconv.FormatBool(*strict))
	}

	data, err := c.doRequest(http.MethodGet, "/api/v1/paginator", query, nil)
	if err != nil {
		return nil, err
	}

	var result pagination.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page window: %w", err)
	}
	return &result, nil
}

// List fetches one page of resource. filters are passed to the remote service as is.
func (c *Client) List(resource string, page, limit int, filters url.Values) (*models.ListingDto, error) {
	query := url.Values{}
	for key, values := range filters {
		query[key] = slices.Clone(values)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	data, err := c.doRequest(http.MethodGet, "/api/v1/"+resource, query, nil)
	if err != nil {
		return nil, err
	}

	var listing models.ListingDto
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", resource, err)
	}
	return &listing, nil
}

func (c *Client) promotionRequest(method, path string) (*models.PromotionDto, error) {
	data, err := c.doRequest(method, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var promotion models.PromotionDto
	if err := json.Unmarshal(data, &promotion); err != nil {
		return nil, fmt.Errorf("failed to unmarshal promotion: %w", err)
	}
	return &promotion, nil
}

func promotionPath(slug string) string {
	return "/api/v1/promotions/" + url.PathEscape(slug)
}

func (c *Client) GetPromotion(slug string) (*models.PromotionDto, error) {
	return c.promotionRequest(http.MethodGet, promotionPath(slug))
}

func (c *Client) DeletePromotion(slug string) (*models.PromotionDto, error) {
	return c.promotionRequest(http.MethodDelete, promotionPath(slug))
}

func (c *Client) SetApproval(slug string, approved bool) (*models.PromotionDto, error) {
	action := "/disapprove"
	if approved {
		action = "/approve"
	}
	return c.promotionRequest(http.MethodPut, promotionPath(slug)+action)
}

func (c *Client) FinishPromotion(slug string) (*models.PromotionDto, error) {
	return c.promotionRequest(http.MethodPut, promotionPath(slug)+"/finish")
}

func decode[T any](data []byte, what string) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to unmarshal %s: %w", what, err)
	}
	return out, nil
}

func (c *Client) documentRequest(method, path string, body any, what string) (models.Document, error) {
	data, err := c.doRequest(method, path, nil, body)
	if err != nil {
		return nil, err
	}
	return decode[models.Document](data, what)
}

func pagePath(slug string) string {
	return "/api/v1/pages/" + url.PathEscape(slug)
}

func (c *Client) GetPage(slug string) (models.Document, error) {
	return c.documentRequest(http.MethodGet, pagePath(slug), nil, "page")
}

func (c *Client) CreatePage(page models.Document) (models.Document, error) {
	return c.documentRequest(http.MethodPost, "/api/v1/pages", page, "page")
}

// CreatePromotion creates a promotion on the page identified by pageSlug.
func (c *Client) CreatePromotion(pageSlug string, promotion models.Document) (*models.PromotionDto, error) {
	data, err := c.doRequest(http.MethodPost, pagePath(pageSlug)+"/promotions", nil, promotion)
	if err != nil {
		return nil, err
	}
	created, err := decode[models.PromotionDto](data, "promotion")
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) pricesRequest(method, slug string, body any) (*models.PricesDto, error) {
	data, err := c.doRequest(method, promotionPath(slug)+"/prices", nil, body)
	if err != nil {
		return nil, err
	}
	prices, err := decode[models.PricesDto](data, "prices")
	if err != nil {
		return nil, err
	}
	return &prices, nil
}

func (c *Client) ListPrices(slug string) (*models.PricesDto, error) {
	return c.pricesRequest(http.MethodGet, slug, nil)
}

func (c *Client) AddPrice(slug string, price models.Document) (*models.PricesDto, error) {
	return c.pricesRequest(http.MethodPost, slug, price)
}

func (c *Client) DeletePrice(id string) (models.Document, error) {
	return c.documentRequest(http.MethodDelete, "/api/v1/prices/"+url.PathEscape(id), nil, "price")
}

func (c *Client) CreateCurrency(currency models.Document) (models.Document, error) {
	return c.documentRequest(http.MethodPost, "/api/v1/currencies", currency, "currency")
}

func (c *Client) DeleteCurrency(acronym string) (models.Document, error) {
	return c.documentRequest(http.MethodDelete, "/api/v1/currencies/"+url.PathEscape(acronym), nil, "currency")
}
