package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/adapter"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// CategoryService handles category operations against /api/categories.
type CategoryService struct {
	client *apiclient.Client
	logger *zap.Logger
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(client *apiclient.Client, logger *zap.Logger) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{client: client, logger: logger}
}

// List fetches all categories. The synthetic "All" entry is added by the
// feed screen, never here.
func (s *CategoryService) List(ctx context.Context) ([]types.Category, error) {
	payload, err := s.client.Get(ctx, "/api/categories", nil)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return adapter.Categories(payload), nil
}

// Get fetches one category by id.
func (s *CategoryService) Get(ctx context.Context, id string) (types.Category, error) {
	record, err := s.FetchRecord(ctx, id)
	if err != nil {
		return types.Category{}, err
	}
	return adapter.Category(record), nil
}

// FetchRecord returns the raw wire record for id. The recipe adapter's
// reference resolver uses this to expand bare category_id references.
func (s *CategoryService) FetchRecord(ctx context.Context, id string) (map[string]any, error) {
	payload, err := s.client.Get(ctx, "/api/categories/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category %s: %w", id, err)
	}
	return normalize.UnwrapObject(payload, "category"), nil
}

// Create posts a new category. The name travels under both categoryName and
// name because deployments disagree about which one the backend reads.
func (s *CategoryService) Create(ctx context.Context, name string) (types.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Category{}, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	payload, err := s.client.Post(ctx, "/api/categories", map[string]any{
		"categoryName": name,
		"name":         name,
	})
	if err != nil {
		return types.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	created := adapter.Category(normalize.UnwrapObject(payload, "category"))
	if created.Name == "" {
		created.Name = name
	}
	return created, nil
}
