package screen

import (
	"strings"

	"github.com/platebook/platebook-client/internal/types"
)

// CategoryAllID is the synthetic "All" chip on the feed. It exists only in
// the presentation layer and is never sent to the backend as a filter.
const CategoryAllID = "all"

// CategoryOption is a category decorated for display.
type CategoryOption struct {
	types.Category
	Icon string
}

// iconRules maps name keywords to chip icons, first match wins.
var iconRules = []struct {
	keyword string
	icon    string
}{
	{"breakfast", "coffee"},
	{"brunch", "coffee"},
	{"lunch", "bowl-mix"},
	{"dinner", "silverware-fork-knife"},
	{"dessert", "cupcake"},
	{"cake", "cupcake"},
	{"snack", "cookie"},
	{"cookie", "cookie"},
	{"vegan", "sprout"},
	{"vegetarian", "leaf"},
	{"salad", "leaf"},
	{"seafood", "fish"},
	{"fish", "fish"},
	{"drink", "cup"},
	{"beverage", "cup"},
}

// IconFor guesses a chip icon from a category name. Purely cosmetic and
// never persisted.
func IconFor(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range iconRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.icon
		}
	}
	return "food"
}

// WithAllSentinel prepends the "All" chip and decorates every category with
// its icon.
func WithAllSentinel(categories []types.Category) []CategoryOption {
	options := make([]CategoryOption, 0, len(categories)+1)
	options = append(options, CategoryOption{
		Category: types.Category{ID: CategoryAllID, Name: "All"},
		Icon:     "food",
	})
	for _, c := range categories {
		options = append(options, CategoryOption{Category: c, Icon: IconFor(c.Name)})
	}
	return options
}
