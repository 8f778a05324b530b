package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/remote"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSettings config.PaginationConfig

func (s staticSettings) Pagination() config.PaginationConfig {
	return config.PaginationConfig(s)
}

func newListingService(t *testing.T, handler http.HandlerFunc, settings staticSettings) *ListingService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := remote.NewClient(server.URL, "", time.Second, 1)
	return NewListingService(client, client, settings, "https://cdn.example.com/")
}

func TestListNumbersDocsAndBuildsWindow(t *testing.T) {
	service := newListingService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/promotions/admin", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("approved"))
		_, _ = w.Write([]byte(`{
			"docs": [
				{"slug": "a", "displayImage": "images/a.png"},
				{"slug": "b", "displayImage": {"thumbnail": "/images/b-t.png", "full": "https://elsewhere/b.png"}}
			],
			"totalDocs": 20, "limit": 2, "page": 3, "totalPages": 10,
			"hasPrevPage": true, "hasNextPage": true, "prevPage": 2, "nextPage": 4
		}`))
	}, staticSettings{DefaultLimit: 10, MaxLimit: 50})

	request := &pagination.PageRequest{Page: 3, PageSize: 2}
	listing, err := service.List(context.Background(), "promotions", request, "/api/v1/promotions?approved=true&page=3&limit=2")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, listing.VisiblePages)
	assert.Equal(t, "/api/v1/promotions?approved=true&limit=2&", listing.CurrentURL)
	require.Len(t, listing.Docs, 2)
	assert.Equal(t, 5, listing.Docs[0]["position"])
	assert.Equal(t, 6, listing.Docs[1]["position"])
	assert.Equal(t, "https://cdn.example.com/images/a.png", listing.Docs[0]["displayImage"])
	assert.Equal(t, map[string]any{
		"thumbnail": "https://cdn.example.com/images/b-t.png",
		"full":      "https://elsewhere/b.png",
	}, listing.Docs[1]["displayImage"])
	require.NotNil(t, listing.NextPage)
	assert.Equal(t, 4, *listing.NextPage)
	assert.Equal(t, "/api/v1/promotions?approved=true&limit=2&page=2", listing.PrevURL)
	assert.Equal(t, "/api/v1/promotions?approved=true&limit=2&page=4", listing.NextURL)
}

func TestListLastPageWindow(t *testing.T) {
	body := `{"docs": [], "totalDocs": 100, "limit": 10, "page": 10, "totalPages": 10}`
	handler := func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}

	legacy := newListingService(t, handler, staticSettings{DefaultLimit: 10, MaxLimit: 100})
	listing, err := legacy.List(context.Background(), "pages", &pagination.PageRequest{Page: 10}, "/api/v1/pages?page=10")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 10}, listing.VisiblePages)
	assert.Equal(t, "/api/v1/pages?", listing.CurrentURL)
	assert.NotNil(t, listing.Docs)

	strict := newListingService(t, handler, staticSettings{DefaultLimit: 10, MaxLimit: 100, StrictOverflowCompensation: true})
	listing, err = strict.List(context.Background(), "pages", &pagination.PageRequest{Page: 10}, "/api/v1/pages?page=10")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, listing.VisiblePages)
}

func TestListAppliesConfiguredLimits(t *testing.T) {
	service := newListingService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"docs": [{"name": "x"}], "totalDocs": 30}`))
	}, staticSettings{DefaultLimit: 25, MaxLimit: 50})

	listing, err := service.List(context.Background(), "currencies", &pagination.PageRequest{}, "/api/v1/currencies")
	require.NoError(t, err)

	assert.Equal(t, 1, listing.Page)
	assert.Equal(t, 25, listing.Limit)
	assert.Equal(t, 2, listing.TotalPages)
	assert.Equal(t, []int{1, 2}, listing.VisiblePages)
	assert.Equal(t, 1, listing.Docs[0]["position"])
}

func TestListEmptyCollection(t *testing.T) {
	service := newListingService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs": [], "totalDocs": 0, "limit": 10, "page": 1, "totalPages": 0}`))
	}, staticSettings{})

	listing, err := service.List(context.Background(), "users", &pagination.PageRequest{}, "/api/v1/users")
	require.NoError(t, err)
	assert.Equal(t, []int{}, listing.VisiblePages)
	assert.Empty(t, listing.Docs)
}

func TestListHugeUpstreamPageStaysInRange(t *testing.T) {
	service := newListingService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs": [], "totalDocs": 50, "limit": 10, "page": 9223372036854775807, "totalPages": 5}`))
	}, staticSettings{StrictOverflowCompensation: true})

	listing, err := service.List(context.Background(), "pages", &pagination.PageRequest{}, "/api/v1/pages")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, listing.VisiblePages)
	assert.Empty(t, listing.PrevURL)
	assert.Empty(t, listing.NextURL)
}

func TestListUnknownResource(t *testing.T) {
	service := newListingService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("upstream must not be called")
	}, staticSettings{})

	_, err := service.List(context.Background(), "prices", &pagination.PageRequest{}, "/api/v1/prices")
	assert.ErrorIs(t, err, customerrors.ErrNotFound)
}

func TestListUpstreamFailure(t *testing.T) {
	service := newListingService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, staticSettings{})

	_, err := service.List(context.Background(), "promotions", &pagination.PageRequest{}, "/api/v1/promotions")
	assert.ErrorIs(t, err, customerrors.ErrUpstreamUnavailable)
}

func TestPrefixImage(t *testing.T) {
	assert.Equal(t, "a.png", prefixImage("", "a.png"))
	assert.Equal(t, "http://x/a.png", prefixImage("http://x", "a.png"))
	assert.Equal(t, "", prefixImage("http://x", ""))
	assert.Equal(t, []any{"http://x/a.png", 3.0}, prefixImage("http://x", []any{"a.png", 3.0}))
	assert.Equal(t, 42, prefixImage("http://x", 42))
}

func TestNextStepOf(t *testing.T) {
	assert.Equal(t, models.NextStepPicture, models.NextStepOf(0))
	assert.Equal(t, models.NextStepPrices, models.NextStepOf(1))
	assert.Equal(t, models.NextStepReady, models.NextStepOf(2))
	assert.Equal(t, models.NextStepReady, models.NextStepOf(7))
}
