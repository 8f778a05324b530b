package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/masteryyh/promoadmin/pkg/customerrors"
	"github.com/masteryyh/promoadmin/pkg/models"
	"github.com/masteryyh/promoadmin/pkg/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageService(t *testing.T, handler http.HandlerFunc) *PageService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := remote.NewClient(server.URL, "token", time.Second, 1)
	return NewPageService(client, NewPromotionService(client, "https://cdn.example.com"), "https://cdn.example.com")
}

func TestCreatePage(t *testing.T) {
	service := newPageService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pages", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Shop","phone":"+263 77 000 0000"}`, string(body))
		_, _ = w.Write([]byte(`{"_id":"pg1","slug":"shop","name":"Shop","displayImage":"img/shop.png"}`))
	})

	page, err := service.CreatePage(context.Background(), models.Document{"name": "Shop", "phone": "+263 77 000 0000"})
	require.NoError(t, err)
	assert.Equal(t, "shop", page["slug"])
	assert.Equal(t, "https://cdn.example.com/img/shop.png", page["displayImage"])
}

func TestCreatePageRejected(t *testing.T) {
	service := newPageService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"errors":[{"field":"name","message":"Name is taken"}]}`))
	})

	_, err := service.CreatePage(context.Background(), models.Document{"name": "Shop"})
	require.ErrorIs(t, err, customerrors.ErrUpstreamRejected)
	assert.Equal(t, map[string]string{"name": "Name is taken"}, customerrors.GetBusinessError(err).Details)
}

func TestCreatePromotionLinksPage(t *testing.T) {
	service := newPageService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/pages/shop":
			_, _ = w.Write([]byte(`{"_id":"pg1","slug":"shop"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/promotions":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"title":"Summer","page":"pg1"}`, string(body))
			_, _ = w.Write([]byte(`{"slug":"summer","title":"Summer","step":0}`))
		default:
			t.Errorf("unexpected upstream call %s %s", r.Method, r.URL)
		}
	})

	promotion, err := service.CreatePromotion(context.Background(), "shop", models.Document{"title": "Summer"})
	require.NoError(t, err)
	assert.Equal(t, "summer", promotion.Slug)
	assert.Equal(t, models.NextStepPicture, promotion.NextStep)
}

func TestCreatePromotionKeepsGivenPage(t *testing.T) {
	service := newPageService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"slug":"shop"}`))
			return
		}
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"title":"Summer","page":"other"}`, string(body))
		_, _ = w.Write([]byte(`{"slug":"summer"}`))
	})

	_, err := service.CreatePromotion(context.Background(), "shop", models.Document{"title": "Summer", "page": "other"})
	require.NoError(t, err)
}

func TestCreatePromotionMissingPage(t *testing.T) {
	service := newPageService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := service.CreatePromotion(context.Background(), "nowhere", models.Document{"title": "Summer"})
	assert.ErrorIs(t, err, customerrors.ErrNotFound)
}
