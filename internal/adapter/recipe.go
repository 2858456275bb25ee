package adapter

import (
	"context"
	"time"

	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// Image field aliases seen across backend deployments, in priority order.
var imageKeys = []string{"image", "imageUrl", "imagePath", "photo", "photoUrl"}

// RecipeAdapter converts wire recipe records into the strict internal type,
// once, right after the network call. Render code never re-coalesces.
type RecipeAdapter struct {
	base       string
	categories *Resolver
}

// NewRecipeAdapter builds a recipe adapter. base is the API base URL used
// to absolutize relative image paths; categories resolves unpopulated
// category references.
func NewRecipeAdapter(base string, categories *Resolver) *RecipeAdapter {
	return &RecipeAdapter{base: base, categories: categories}
}

// FromWire maps one backend recipe record to a Recipe. Title always ends up
// non-empty; records the backend returned are marked Persisted.
func (a *RecipeAdapter) FromWire(ctx context.Context, record map[string]any) types.Recipe {
	now := time.Now().UTC()
	created := timestamp(record, now, "createdAt", "date")
	return types.Recipe{
		ID:          normalize.String(record, "", "_id", "id"),
		Title:       normalize.String(record, "Untitled Recipe", "title", "name", "recipeName"),
		Description: normalize.String(record, "", "description"),
		Image:       a.image(record),
		Categories:  a.categoryRefs(ctx, record),
		Author:      a.author(record),
		CreatedAt:   created,
		UpdatedAt:   timestamp(record, created, "updatedAt", "createdAt"),
		Persistence: types.Persisted,
	}
}

// FromWireList maps a list payload, tolerating any of the known envelopes.
func (a *RecipeAdapter) FromWireList(ctx context.Context, payload any) []types.Recipe {
	records := normalize.UnwrapArray(payload, "recipes")
	recipes := make([]types.Recipe, 0, len(records))
	for _, record := range records {
		recipes = append(recipes, a.FromWire(ctx, record))
	}
	return recipes
}

func (a *RecipeAdapter) image(record map[string]any) *string {
	raw := normalize.String(record, "", imageKeys...)
	if url := normalize.ImageURL(raw, a.base); url != "" {
		return &url
	}
	return nil
}

// categoryRefs handles the three shapes category data arrives in: a
// populated object, an array of populated objects, or a bare category_id.
func (a *RecipeAdapter) categoryRefs(ctx context.Context, record map[string]any) []types.Ref {
	if arr, ok := record["category"].([]any); ok {
		refs := make([]types.Ref, 0, len(arr))
		for _, item := range arr {
			if obj, ok := item.(map[string]any); ok {
				refs = append(refs, types.Ref{
					ID:   normalize.String(obj, "", "_id", "id"),
					Name: normalize.String(obj, "", "categoryName", "name"),
				})
			}
		}
		return refs
	}

	ref := a.categories.Resolve(ctx, record, "category", "category_id", "categoryId")
	if ref.Zero() {
		return nil
	}
	return []types.Ref{ref}
}

// author extracts the posting user from a populated user object, from
// top-level user fields, or from createdBy. No fetch is attempted; an
// unresolvable author renders blank.
func (a *RecipeAdapter) author(record map[string]any) types.AuthorRef {
	if user := normalize.Map(record, "user"); user != nil {
		return types.AuthorRef{
			ID:     normalize.String(user, normalize.String(record, "", "user_id", "userId"), "_id", "id"),
			Name:   normalize.String(user, normalize.String(record, "", "userName"), "userName", "name", "username", "user_name"),
			Avatar: avatar(user, a.base, "userProfilePicture", "profileImage", "avatar", "profile_picture"),
		}
	}

	if id := normalize.String(record, "", "user_id", "userId"); id != "" {
		return types.AuthorRef{
			ID:     id,
			Name:   normalize.String(record, "", "userName", "username", "user_name"),
			Avatar: avatar(record, a.base, "userProfilePicture", "profileImage"),
		}
	}

	if creator := normalize.Map(record, "createdBy"); creator != nil {
		return types.AuthorRef{
			ID:     normalize.String(creator, "", "_id", "id"),
			Name:   normalize.String(creator, "", "userName", "name", "username"),
			Avatar: avatar(creator, a.base, "userProfilePicture", "profileImage"),
		}
	}

	return types.AuthorRef{}
}

// avatar normalizes a profile-picture field the same way recipe images are
// normalized, so relative paths and raw base64 both render.
func avatar(record map[string]any, base string, keys ...string) *string {
	raw := normalize.String(record, "", keys...)
	if url := normalize.ImageURL(raw, base); url != "" {
		return &url
	}
	return nil
}
