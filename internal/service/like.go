package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/adapter"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// LikeFilter narrows a reaction listing.
type LikeFilter struct {
	RecipeID string
	UserID   string
	Type     types.LikeType
}

// LikeService handles reactions against /api/likes, including the toggle
// flow that keeps at most one record per (user, recipe) pair.
type LikeService struct {
	client *apiclient.Client
	logger *zap.Logger
}

// NewLikeService creates a new LikeService instance
func NewLikeService(client *apiclient.Client, logger *zap.Logger) *LikeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LikeService{client: client, logger: logger}
}

// List fetches reactions. A missing endpoint (404) reads as an empty
// collection; some deployments simply do not have likes yet.
func (s *LikeService) List(ctx context.Context, filter LikeFilter) ([]types.Like, error) {
	query := url.Values{}
	if filter.RecipeID != "" {
		query.Set("recipe_id", filter.RecipeID)
	}
	if filter.UserID != "" {
		query.Set("user_id", filter.UserID)
	}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}

	payload, err := s.client.Get(ctx, "/api/likes", query)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}
	return adapter.Likes(payload), nil
}

// Counts tallies reactions for a recipe. Failures degrade to zero counts so
// the detail screen still renders.
func (s *LikeService) Counts(ctx context.Context, recipeID string) (types.LikeCounts, error) {
	likes, err := s.List(ctx, LikeFilter{RecipeID: recipeID, Type: types.LikeTypeLike})
	if err != nil {
		s.logger.Warn("failed to count likes", zap.String("recipe_id", recipeID), zap.Error(err))
		return types.LikeCounts{}, nil
	}
	dislikes, err := s.List(ctx, LikeFilter{RecipeID: recipeID, Type: types.LikeTypeDislike})
	if err != nil {
		s.logger.Warn("failed to count dislikes", zap.String("recipe_id", recipeID), zap.Error(err))
		return types.LikeCounts{Likes: len(likes)}, nil
	}
	return types.LikeCounts{Likes: len(likes), Dislikes: len(dislikes)}, nil
}

// Toggle applies one tap on the like or dislike button:
//   - no existing record: create one with the tapped polarity
//   - same polarity exists: delete it (toggle off), returning nil
//   - opposite polarity exists: update it in place
func (s *LikeService) Toggle(ctx context.Context, recipeID, userID string, polarity types.LikeType) (*types.Like, error) {
	existing := s.userLike(ctx, recipeID, userID)

	if existing == nil {
		return s.create(ctx, recipeID, userID, polarity)
	}

	if existing.Type == polarity {
		if err := s.delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	payload, err := s.client.Put(ctx, "/api/likes/"+existing.ID, map[string]any{"type": string(polarity)})
	if err != nil {
		return nil, fmt.Errorf("failed to update like: %w", err)
	}
	updated := adapter.Like(normalize.UnwrapObject(payload, "like"))
	if updated.ID == "" {
		updated = types.Like{ID: existing.ID, RecipeID: recipeID, UserID: userID, Type: polarity}
	}
	return &updated, nil
}

// userLike finds the user's existing reaction for a recipe, treating any
// failure as "none" so a tap never errors out on the read side.
func (s *LikeService) userLike(ctx context.Context, recipeID, userID string) *types.Like {
	likes, err := s.List(ctx, LikeFilter{RecipeID: recipeID, UserID: userID})
	if err != nil {
		s.logger.Warn("failed to fetch user like", zap.Error(err))
		return nil
	}
	if len(likes) == 0 {
		return nil
	}
	return &likes[0]
}

func (s *LikeService) create(ctx context.Context, recipeID, userID string, polarity types.LikeType) (*types.Like, error) {
	payload, err := s.client.Post(ctx, "/api/likes", map[string]any{
		"recipe_id": recipeID,
		"user_id":   userID,
		"type":      string(polarity),
	})
	if err != nil {
		if apiclient.IsNotFound(err) {
			// Endpoint not deployed; fabricate a temp record so the UI
			// reflects the tap.
			s.logger.Warn("likes endpoint not found, creating like locally")
			return &types.Like{
				ID:       "temp-" + uuid.NewString(),
				RecipeID: recipeID,
				UserID:   userID,
				Type:     polarity,
			}, nil
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	created := adapter.Like(normalize.UnwrapObject(payload, "like"))
	if created.ID == "" {
		created = types.Like{RecipeID: recipeID, UserID: userID, Type: polarity}
	}
	return &created, nil
}

func (s *LikeService) delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/likes/"+id); err != nil {
		if apiclient.IsNotFound(err) {
			s.logger.Warn("like endpoint not found, skipping delete")
			return nil
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
