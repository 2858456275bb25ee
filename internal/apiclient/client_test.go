package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL+"/", 5*time.Second, nil), srv
}

func TestGetDecodesJSON(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"r1"}]`))
	})
	defer srv.Close()

	payload, err := client.Get(context.Background(), "/api/recipes", url.Values{"user_id": {"u1"}})
	require.NoError(t, err)
	arr, ok := payload.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestPostSendsJSONBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Pasta", got["title"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1"}`))
	})
	defer srv.Close()

	payload, err := client.Post(context.Background(), "/api/recipes", map[string]any{"title": "Pasta"})
	require.NoError(t, err)
	assert.Equal(t, "r1", payload.(map[string]any)["id"])
}

func TestBearerTokenHeader(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	})
	defer srv.Close()

	client.SetToken("tok-123")
	_, err := client.Get(context.Background(), "/api/users/1", nil)
	assert.NoError(t, err)
}

func TestNonSuccessBecomesAPIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`not found`))
	})
	defer srv.Close()

	_, err := client.Get(context.Background(), "/api/likes", nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "not found", apiErr.Body)
}

func TestEmptyBodyIsNilPayload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	assert.NoError(t, client.Delete(context.Background(), "/api/likes/l1"))
}

func TestUploadMultipart(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "pic.jpg", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
		_, _ = w.Write([]byte(`{"image":"/uploads/pic.jpg"}`))
	})
	defer srv.Close()

	payload, err := client.Upload(context.Background(), "/api/recipes/r1/image", "image", "pic.jpg", []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/pic.jpg", payload.(map[string]any)["image"])
}

func TestJoinSingleSlash(t *testing.T) {
	client := New("https://api.example.com/", time.Second, nil)
	assert.Equal(t, "https://api.example.com/api/recipes", client.join("/api/recipes", nil))
	assert.Equal(t, "https://api.example.com/api/recipes", client.join("api/recipes", nil))
}
