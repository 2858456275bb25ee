package screen

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/types"
)

// Search filters the full recipe list by title or category name. Filtering
// happens client-side over one fetch; there is no search endpoint.
type Search struct {
	recipes service.IRecipeService
	logger  *zap.Logger
	out     io.Writer
}

// NewSearch creates the search screen controller.
func NewSearch(recipes service.IRecipeService, logger *zap.Logger, out io.Writer) *Search {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Search{recipes: recipes, logger: logger, out: out}
}

// Run fetches and filters. An empty query renders nothing, matching the
// cleared search box.
func (s *Search) Run(ctx context.Context, query string) []types.Recipe {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	recipes, err := s.recipes.List(ctx, service.RecipeFilter{})
	if err != nil {
		s.logger.Warn("search fetch failed", zap.Error(err))
		fmt.Fprintln(s.out, "Search is unavailable right now.")
		return nil
	}

	var matches []types.Recipe
	for _, r := range recipes {
		if s.matches(r, query) {
			matches = append(matches, r)
			renderRecipeLine(s.out, r)
		}
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No recipes found for %q.\n", query)
	}
	return matches
}

func (s *Search) matches(r types.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	for _, c := range r.Categories {
		if strings.Contains(strings.ToLower(c.Name), query) {
			return true
		}
	}
	return false
}
