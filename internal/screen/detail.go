package screen

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/types"
)

// Detail is the single-recipe screen: the record itself, its reaction
// tallies, and the signed-in user's like/dislike buttons.
type Detail struct {
	recipes service.IRecipeService
	likes   service.ILikeService
	userID  string
	logger  *zap.Logger
	out     io.Writer

	recipe types.Recipe
	counts types.LikeCounts
}

// NewDetail creates the recipe detail controller for the signed-in user.
func NewDetail(recipes service.IRecipeService, likes service.ILikeService, userID string, logger *zap.Logger, out io.Writer) *Detail {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detail{recipes: recipes, likes: likes, userID: userID, logger: logger, out: out}
}

// Load fetches the recipe and its counts. Count failures degrade to zeros
// inside the service, so the screen only has to handle the recipe fetch.
func (d *Detail) Load(ctx context.Context, recipeID string) error {
	recipe, err := d.recipes.Get(ctx, recipeID)
	if err != nil {
		d.logger.Warn("failed to load recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		fmt.Fprintln(d.out, "Could not load this recipe.")
		return err
	}
	d.recipe = recipe

	d.counts, _ = d.likes.Counts(ctx, recipeID)
	d.render()
	return nil
}

// React runs the toggle for the tapped button and refreshes the tallies. A
// nil like back from the service means the existing reaction was removed.
func (d *Detail) React(ctx context.Context, polarity types.LikeType) {
	like, err := d.likes.Toggle(ctx, d.recipe.ID, d.userID, polarity)
	if err != nil {
		d.logger.Warn("reaction failed", zap.String("recipe_id", d.recipe.ID), zap.Error(err))
		alert(d.out, "Error", "Could not update your reaction.")
		return
	}
	if like == nil {
		d.logger.Debug("reaction removed", zap.String("recipe_id", d.recipe.ID))
	}

	d.counts, _ = d.likes.Counts(ctx, d.recipe.ID)
	d.render()
}

// Recipe returns the loaded record, for tests and navigation.
func (d *Detail) Recipe() types.Recipe { return d.recipe }

// Counts returns the last fetched tallies.
func (d *Detail) Counts() types.LikeCounts { return d.counts }

func (d *Detail) render() {
	renderRecipeLine(d.out, d.recipe)
	if d.recipe.Description != "" {
		fmt.Fprintln(d.out, d.recipe.Description)
	}
	if d.recipe.Author.Name != "" {
		fmt.Fprintf(d.out, "by %s\n", d.recipe.Author.Name)
	}
	fmt.Fprintf(d.out, "%d likes · %d dislikes\n", d.counts.Likes, d.counts.Dislikes)
}
