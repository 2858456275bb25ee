package screen

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
)

// Feed is the home screen: category chips plus the recipe list for the
// selected chip.
type Feed struct {
	recipes    service.IRecipeService
	categories service.ICategoryService
	logger     *zap.Logger
	out        io.Writer

	options  []CategoryOption
	selected string
}

// NewFeed creates the home screen controller.
func NewFeed(recipes service.IRecipeService, categories service.ICategoryService, logger *zap.Logger, out io.Writer) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		recipes:    recipes,
		categories: categories,
		logger:     logger,
		out:        out,
		selected:   CategoryAllID,
	}
}

// Load runs on mount and again on every focus-regain; there is no
// coalescing between the two fetches. Failed reads render an empty state
// rather than an error.
func (f *Feed) Load(ctx context.Context) {
	fetched, err := f.categories.List(ctx)
	if err != nil {
		f.logger.Warn("failed to load categories", zap.Error(err))
	}
	f.options = WithAllSentinel(fetched)

	for _, opt := range f.options {
		marker := " "
		if opt.ID == f.selected {
			marker = "*"
		}
		fmt.Fprintf(f.out, "%s [%s] %s\n", marker, opt.Icon, opt.Name)
	}

	f.renderRecipes(ctx)
}

// Select switches the active chip and refetches the list. The "All"
// sentinel means no category filter at all.
func (f *Feed) Select(ctx context.Context, categoryID string) {
	f.selected = categoryID
	f.renderRecipes(ctx)
}

// CreateCategory is the "+" flow on the chip row. Duplicate names are
// rejected locally before any network call.
func (f *Feed) CreateCategory(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		alert(f.out, "Error", "Please enter a category name")
		return
	}
	for _, opt := range f.options {
		if strings.EqualFold(opt.Name, name) {
			alert(f.out, "Error", "A category with this name already exists")
			return
		}
	}

	created, err := f.categories.Create(ctx, name)
	if err != nil {
		alert(f.out, "Error", "Failed to create category")
		return
	}
	f.options = append(f.options, CategoryOption{Category: created, Icon: IconFor(created.Name)})
	alert(f.out, "Success", "Category created successfully!")
}

func (f *Feed) renderRecipes(ctx context.Context) {
	filter := service.RecipeFilter{}
	if f.selected != CategoryAllID {
		filter.CategoryID = f.selected
	}

	recipes, err := f.recipes.List(ctx, filter)
	if err != nil {
		f.logger.Warn("failed to load recipes", zap.Error(err))
		fmt.Fprintln(f.out, "No recipes available right now.")
		return
	}
	if len(recipes) == 0 {
		fmt.Fprintln(f.out, "No recipes yet. Post the first one!")
		return
	}
	for _, r := range recipes {
		renderRecipeLine(f.out, r)
	}
}

// Selected returns the active chip id, for tests and the CLI prompt.
func (f *Feed) Selected() string { return f.selected }

// Options returns the current chip row.
func (f *Feed) Options() []CategoryOption { return f.options }
