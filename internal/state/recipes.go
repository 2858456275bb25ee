package state

import (
	"sync"
	"time"

	"github.com/platebook/platebook-client/internal/types"
)

// RecipeBook owns the cross-screen "my recipes" list. Only its own methods
// mutate the slice; readers get snapshots. There is no request-generation
// guard: a slow refetch that lands after a newer one overwrites it, and the
// full-list Replace makes that a harmless last-write-wins.
type RecipeBook struct {
	mu      sync.Mutex
	recipes []types.Recipe
}

// NewRecipeBook creates an empty book.
func NewRecipeBook() *RecipeBook {
	return &RecipeBook{}
}

// NewSeededRecipeBook creates a book preloaded with the sample entries shown
// before the first fetch completes. The samples are marked Persisted so the
// first Replace clears them; only genuinely pending posts survive a refetch.
func NewSeededRecipeBook() *RecipeBook {
	seed := []struct {
		id, title, date string
	}{
		{"1", "Spaghetti Carbonara", "2024-01-25"},
		{"2", "Chicken Tikka Masala", "2024-01-23"},
		{"3", "Banana Bread", "2024-01-21"},
		{"4", "Fish Tacos", "2024-01-19"},
	}

	book := &RecipeBook{}
	for _, s := range seed {
		created, _ := time.Parse("2006-01-02", s.date)
		book.recipes = append(book.recipes, types.Recipe{
			ID:          s.id,
			Title:       s.title,
			CreatedAt:   created,
			UpdatedAt:   created,
			Persistence: types.Persisted,
		})
	}
	return book
}

// Add prepends a recipe, newest first.
func (b *RecipeBook) Add(recipe types.Recipe) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recipes = append([]types.Recipe{recipe}, b.recipes...)
}

// Replace swaps the whole list, the refetch-on-focus policy: invalidate by
// refetch is the only consistency mechanism. Local-only records are kept in
// front of the fetched list so a pending post does not vanish.
func (b *RecipeBook) Replace(fetched []types.Recipe) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var kept []types.Recipe
	for _, r := range b.recipes {
		if r.Local() {
			kept = append(kept, r)
		}
	}
	b.recipes = append(kept, fetched...)
}

// Snapshot returns a copy of the current list.
func (b *RecipeBook) Snapshot() []types.Recipe {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]types.Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Len returns the current list length.
func (b *RecipeBook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.recipes)
}
