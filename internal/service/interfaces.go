package service

import (
	"context"

	"github.com/platebook/platebook-client/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, input RegisterInput) (*Session, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	List(ctx context.Context, filter RecipeFilter) ([]types.Recipe, error)
	Get(ctx context.Context, id string) (types.Recipe, error)
	Create(ctx context.Context, input CreateRecipeInput) (types.Recipe, error)
	UploadImage(ctx context.Context, recipeID, filename string, data []byte) (string, error)
}

// ICategoryService defines the interface for category operations
type ICategoryService interface {
	List(ctx context.Context) ([]types.Category, error)
	Get(ctx context.Context, id string) (types.Category, error)
	Create(ctx context.Context, name string) (types.Category, error)
}

// ILikeService defines the interface for reaction operations
type ILikeService interface {
	List(ctx context.Context, filter LikeFilter) ([]types.Like, error)
	Counts(ctx context.Context, recipeID string) (types.LikeCounts, error)
	Toggle(ctx context.Context, recipeID, userID string, polarity types.LikeType) (*types.Like, error)
}

// INotificationService defines the interface for notification operations
type INotificationService interface {
	List(ctx context.Context, userID string) ([]types.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	Get(ctx context.Context, userID string) (types.UserProfile, error)
	UploadAvatar(ctx context.Context, userID, filename string, data []byte) (string, error)
}
