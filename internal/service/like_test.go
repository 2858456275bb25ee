package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/types"
)

func newLikeService(handler http.HandlerFunc) (*LikeService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := apiclient.New(srv.URL, 5*time.Second, nil)
	return NewLikeService(client, nil), srv
}

func TestToggleCreatesWhenNoneExists(t *testing.T) {
	var created map[string]any
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case r.Method == http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &created))
			_, _ = w.Write([]byte(`{"_id":"l1","recipe_id":"r1","user_id":"u1","type":"like"}`))
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	defer srv.Close()

	like, err := svc.Toggle(context.Background(), "r1", "u1", types.LikeTypeLike)
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, "l1", like.ID)
	assert.Equal(t, types.LikeTypeLike, like.Type)
	assert.Equal(t, "like", created["type"])
}

func TestToggleSamePolarityDeletes(t *testing.T) {
	deleted := ""
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"_id":"l1","recipe_id":"r1","user_id":"u1","type":"like"}]`))
		case http.MethodDelete:
			deleted = strings.TrimPrefix(r.URL.Path, "/api/likes/")
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	defer srv.Close()

	like, err := svc.Toggle(context.Background(), "r1", "u1", types.LikeTypeLike)
	require.NoError(t, err)
	assert.Nil(t, like)
	assert.Equal(t, "l1", deleted)
}

func TestToggleOppositePolarityUpdates(t *testing.T) {
	var updated map[string]any
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"_id":"l1","recipe_id":"r1","user_id":"u1","type":"like"}]`))
		case http.MethodPut:
			assert.Equal(t, "/api/likes/l1", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &updated))
			_, _ = w.Write([]byte(`{"_id":"l1","recipe_id":"r1","user_id":"u1","type":"dislike"}`))
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	defer srv.Close()

	like, err := svc.Toggle(context.Background(), "r1", "u1", types.LikeTypeDislike)
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, types.LikeTypeDislike, like.Type)
	assert.Equal(t, "dislike", updated["type"])
}

func TestToggleMissingEndpointFabricatesTempLike(t *testing.T) {
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		http.NotFound(w, r)
	})
	defer srv.Close()

	like, err := svc.Toggle(context.Background(), "r1", "u1", types.LikeTypeDislike)
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.True(t, strings.HasPrefix(like.ID, "temp-"), like.ID)
	assert.Equal(t, types.LikeTypeDislike, like.Type)
}

func TestListMissingEndpointReadsEmpty(t *testing.T) {
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	defer srv.Close()

	likes, err := svc.List(context.Background(), LikeFilter{RecipeID: "r1"})
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestListEnvelopeVariants(t *testing.T) {
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"likes":[{"_id":"l1","recipe_id":"r1","user_id":"u1","type":"like"}]}`))
	})
	defer srv.Close()

	likes, err := svc.List(context.Background(), LikeFilter{})
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "l1", likes[0].ID)
}

func TestCountsDegradeToZeroOnFailure(t *testing.T) {
	svc, srv := newLikeService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	counts, err := svc.Counts(context.Background(), "r1")
	require.NoError(t, err)
	assert.Zero(t, counts.Likes)
	assert.Zero(t, counts.Dislikes)
}
