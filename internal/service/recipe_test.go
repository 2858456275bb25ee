package service

import (
	"context"
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

func newRecipeService(handler http.HandlerFunc) (*RecipeService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := apiclient.New(srv.URL, 5*time.Second, nil)
	return NewRecipeService(client, NewCategoryService(client, nil), nil), srv
}

func validCreateInput() CreateRecipeInput {
	return CreateRecipeInput{
		Title:       "Carbonara",
		Description: "Boil pasta. Fry guanciale.",
		UserID:      "u1",
		CategoryID:  "c1",
	}
}

func TestCreateEmptyTitleNeverHitsNetwork(t *testing.T) {
	calls := 0
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	defer srv.Close()

	input := validCreateInput()
	input.Title = ""
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, calls)
}

func TestCreatePersistedRecipe(t *testing.T) {
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/recipes", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"_id":"r1","title":"Carbonara","user_id":"u1"}}`))
	})
	defer srv.Close()

	recipe, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "r1", recipe.ID)
	assert.Equal(t, types.Persisted, recipe.Persistence)
	assert.False(t, recipe.Local())
}

func TestCreateFallsBackToLocalOnlyRecord(t *testing.T) {
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	input := validCreateInput()
	input.LocalImageURI = "file:///photos/pic.jpg"
	recipe, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(recipe.ID, "local-"), recipe.ID)
	assert.Equal(t, types.PendingLocalOnly, recipe.Persistence)
	assert.True(t, recipe.Local())
	assert.Equal(t, "Carbonara", recipe.Title)
	require.Len(t, recipe.Categories, 1)
	assert.Equal(t, "c1", recipe.Categories[0].ID)
	require.NotNil(t, recipe.Image)
	assert.Equal(t, "file:///photos/pic.jpg", *recipe.Image)
}

func TestCreateUploadsImageAfterPersist(t *testing.T) {
	uploaded := false
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/recipes":
			_, _ = w.Write([]byte(`{"_id":"r1","title":"Carbonara"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/recipes/r1/image":
			uploaded = true
			_, _ = w.Write([]byte(`{"image":"/uploads/r1.jpg"}`))
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	defer srv.Close()

	input := validCreateInput()
	input.ImageData = []byte{0xFF, 0xD8}
	recipe, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, uploaded)
	require.NotNil(t, recipe.Image)
	assert.True(t, strings.HasSuffix(*recipe.Image, "/uploads/r1.jpg"))
}

func TestListFiltersAndEnvelopes(t *testing.T) {
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "c1", r.URL.Query().Get("category_id"))
		_, _ = w.Write([]byte(`[{"_id":"r1","title":"A"},{"_id":"r2","name":"B"}]`))
	})
	defer srv.Close()

	recipes, err := svc.List(context.Background(), RecipeFilter{UserID: "u1", CategoryID: "c1"})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "A", recipes[0].Title)
	assert.Equal(t, "B", recipes[1].Title)
}

func TestGetNestedUnderData(t *testing.T) {
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/r1", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"_id":"r1","title":"Flan","category":{"_id":"c2","categoryName":"Dessert"}}}`))
	})
	defer srv.Close()

	recipe, err := svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Flan", recipe.Title)
	require.Len(t, recipe.Categories, 1)
	assert.Equal(t, "Dessert", recipe.Categories[0].Name)
}

func TestGetUnpopulatedCategoryResolvedByFetch(t *testing.T) {
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/recipes/r1":
			_, _ = w.Write([]byte(`{"_id":"r1","title":"Flan","category_id":"c2"}`))
		case "/api/categories/c2":
			_, _ = w.Write([]byte(`{"data":{"_id":"c2","categoryName":"Dessert"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	defer srv.Close()

	recipe, err := svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, recipe.Categories, 1)
	assert.Equal(t, types.Ref{ID: "c2", Name: "Dessert"}, recipe.Categories[0])
}

func TestGetCategoryFetchFailureDegrades(t *testing.T) {
	svc, srv := newRecipeService(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/recipes/r1":
			_, _ = w.Write([]byte(`{"_id":"r1","title":"Flan","category_id":"c2"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	defer srv.Close()

	recipe, err := svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, recipe.Categories, 1)
	assert.Equal(t, "c2", recipe.Categories[0].ID)
	assert.Empty(t, recipe.Categories[0].Name)
}
