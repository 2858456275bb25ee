package screen

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/state"
)

// CreateForm is the camera screen's post-recipe form.
type CreateForm struct {
	Title         string
	Description   string
	CategoryID    string
	LocalImageURI string
	ImageData     []byte
}

// Create is the camera screen: pick a photo, fill the form, post.
type Create struct {
	recipes service.IRecipeService
	book    *state.RecipeBook
	userID  string
	logger  *zap.Logger
	out     io.Writer
}

// NewCreate creates the camera screen controller for the signed-in user.
func NewCreate(recipes service.IRecipeService, book *state.RecipeBook, userID string, logger *zap.Logger, out io.Writer) *Create {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Create{recipes: recipes, book: book, userID: userID, logger: logger, out: out}
}

// Submit validates the form field by field, posting only when everything is
// present. A failed create still lands in My Recipes as a local-only record,
// so the success alert names what actually happened.
func (c *Create) Submit(ctx context.Context, form CreateForm) bool {
	if strings.TrimSpace(form.Title) == "" {
		alert(c.out, "Error", "Please enter a recipe title.")
		return false
	}
	if strings.TrimSpace(form.Description) == "" {
		alert(c.out, "Error", "Please enter a description.")
		return false
	}
	if form.CategoryID == "" {
		alert(c.out, "Error", "Please select a category.")
		return false
	}

	recipe, err := c.recipes.Create(ctx, service.CreateRecipeInput{
		Title:         form.Title,
		Description:   form.Description,
		UserID:        c.userID,
		CategoryID:    form.CategoryID,
		LocalImageURI: form.LocalImageURI,
		ImageData:     form.ImageData,
	})
	if err != nil {
		alert(c.out, "Error", "Failed to post recipe.")
		return false
	}

	c.book.Add(recipe)
	if recipe.Local() {
		alert(c.out, "Success", "Recipe added to My Recipes!")
	} else {
		alert(c.out, "Success", "Recipe posted successfully!")
	}
	return true
}
