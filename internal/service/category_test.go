package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platebook/platebook-client/internal/apiclient"
)

func newCategoryService(handler http.HandlerFunc) (*CategoryService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewCategoryService(apiclient.New(srv.URL, 5*time.Second, nil), nil), srv
}

func TestCategoryListEnvelope(t *testing.T) {
	svc, srv := newCategoryService(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories":[{"_id":"c1","categoryName":"Breakfast"}]}`))
	})
	defer srv.Close()

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Breakfast", categories[0].Name)
}

func TestCategoryCreateSendsBothNameKeys(t *testing.T) {
	var body map[string]any
	svc, srv := newCategoryService(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		_, _ = w.Write([]byte(`{"data":{"_id":"c9"}}`))
	})
	defer srv.Close()

	created, err := svc.Create(context.Background(), "Soups")
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
	assert.Equal(t, "Soups", created.Name)
	assert.Equal(t, "Soups", body["categoryName"])
	assert.Equal(t, "Soups", body["name"])
}

func TestCategoryCreateEmptyNameIsValidationError(t *testing.T) {
	calls := 0
	svc, srv := newCategoryService(func(w http.ResponseWriter, r *http.Request) { calls++ })
	defer srv.Close()

	_, err := svc.Create(context.Background(), "   ")
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, calls)
}

func TestCategoryGetNested(t *testing.T) {
	svc, srv := newCategoryService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/c1", r.URL.Path)
		_, _ = w.Write([]byte(`{"category":{"_id":"c1","name":"Dinner"}}`))
	})
	defer srv.Close()

	category, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Dinner", category.Name)
}
