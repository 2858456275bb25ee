package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/adapter"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// RecipeFilter narrows a recipe listing.
type RecipeFilter struct {
	UserID     string
	CategoryID string
}

// CreateRecipeInput is the user-entered form for posting a recipe. The
// description doubles as free-text directions. Image is optional and is
// uploaded in a separate call after the record exists.
type CreateRecipeInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	UserID      string `validate:"required"`
	CategoryID  string `validate:"required"`

	// LocalImageURI is the device-local photo picked for the recipe, if any.
	LocalImageURI string
	ImageData     []byte
}

// RecipeService handles recipe operations against /api/recipes.
type RecipeService struct {
	client   *apiclient.Client
	adapter  *adapter.RecipeAdapter
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecipeService creates a new RecipeService instance. Unpopulated
// category references on incoming recipes are resolved through categories.
func NewRecipeService(client *apiclient.Client, categories *CategoryService, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	resolver := adapter.NewResolver(categories.FetchRecord, logger, "categoryName", "name")
	return &RecipeService{
		client:   client,
		adapter:  adapter.NewRecipeAdapter(client.BaseURL(), resolver),
		validate: validator.New(),
		logger:   logger,
	}
}

// List fetches recipes, optionally filtered by author or category.
func (s *RecipeService) List(ctx context.Context, filter RecipeFilter) ([]types.Recipe, error) {
	query := url.Values{}
	if filter.UserID != "" {
		query.Set("user_id", filter.UserID)
	}
	if filter.CategoryID != "" {
		query.Set("category_id", filter.CategoryID)
	}

	payload, err := s.client.Get(ctx, "/api/recipes", query)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	return s.adapter.FromWireList(ctx, payload), nil
}

// Get fetches one recipe by id. The detail endpoint sometimes nests the
// record under data.
func (s *RecipeService) Get(ctx context.Context, id string) (types.Recipe, error) {
	payload, err := s.client.Get(ctx, "/api/recipes/"+id, nil)
	if err != nil {
		return types.Recipe{}, fmt.Errorf("failed to fetch recipe %s: %w", id, err)
	}
	record := normalize.UnwrapObject(payload, "recipe")
	recipe := s.adapter.FromWire(ctx, record)
	if recipe.ID == "" {
		recipe.ID = id
	}
	return recipe, nil
}

// Create validates the form and posts the recipe. Validation failures are
// returned before any network call. A transport or backend failure does not
// fail the action: a PendingLocalOnly record is synthesized instead so the
// post still shows up on the device, clearly marked as not persisted.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (types.Recipe, error) {
	if err := s.validate.Struct(input); err != nil {
		return types.Recipe{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	payload, err := s.client.Post(ctx, "/api/recipes", map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"user_id":     input.UserID,
		"category_id": input.CategoryID,
	})
	if err != nil {
		s.logger.Warn("recipe create failed, keeping a local-only copy", zap.Error(err))
		return s.localRecipe(input), nil
	}

	recipe := s.adapter.FromWire(ctx, normalize.UnwrapObject(payload, "recipe"))

	if len(input.ImageData) > 0 && recipe.ID != "" {
		imageURL, err := s.UploadImage(ctx, recipe.ID, "recipe.jpg", input.ImageData)
		if err != nil {
			// The recipe itself persisted; losing the photo is not fatal.
			s.logger.Warn("recipe image upload failed", zap.String("recipe_id", recipe.ID), zap.Error(err))
		} else if imageURL != "" {
			recipe.Image = &imageURL
		}
	}

	return recipe, nil
}

// UploadImage sends the photo for an existing recipe as multipart form data
// and returns the normalized URL the backend stored it under.
func (s *RecipeService) UploadImage(ctx context.Context, recipeID, filename string, data []byte) (string, error) {
	payload, err := s.client.Upload(ctx, "/api/recipes/"+recipeID+"/image", "image", filename, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload recipe image: %w", err)
	}
	record := normalize.UnwrapObject(payload, "recipe")
	raw := normalize.String(record, "", "image", "imageUrl", "imagePath", "photo", "photoUrl")
	return normalize.ImageURL(raw, s.client.BaseURL()), nil
}

// localRecipe fabricates the speculative record shown when the create call
// failed. It carries the picked device photo untouched.
func (s *RecipeService) localRecipe(input CreateRecipeInput) types.Recipe {
	now := time.Now().UTC()
	recipe := types.Recipe{
		ID:          "local-" + uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Author:      types.AuthorRef{ID: input.UserID},
		CreatedAt:   now,
		UpdatedAt:   now,
		Persistence: types.PendingLocalOnly,
	}
	if input.CategoryID != "" {
		recipe.Categories = []types.Ref{{ID: input.CategoryID}}
	}
	if uri := normalize.ImageURL(input.LocalImageURI, s.client.BaseURL()); uri != "" {
		recipe.Image = &uri
	}
	return recipe
}
