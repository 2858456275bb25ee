package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platebook/platebook-client/internal/types"
)

func TestIconFor(t *testing.T) {
	assert.Equal(t, "coffee", IconFor("Breakfast"))
	assert.Equal(t, "cupcake", IconFor("Desserts"))
	assert.Equal(t, "sprout", IconFor("Vegan Dinners"))
	assert.Equal(t, "fish", IconFor("Seafood"))
	assert.Equal(t, "food", IconFor("Mexican"))
	assert.Equal(t, "food", IconFor(""))
}

func TestWithAllSentinel(t *testing.T) {
	options := WithAllSentinel([]types.Category{
		{ID: "c1", Name: "Dinner"},
		{ID: "c2", Name: "Snacks"},
	})

	assert.Len(t, options, 3)
	assert.Equal(t, CategoryAllID, options[0].ID)
	assert.Equal(t, "All", options[0].Name)
	assert.Equal(t, "silverware-fork-knife", options[1].Icon)
	assert.Equal(t, "cookie", options[2].Icon)
}

func TestWithAllSentinelEmpty(t *testing.T) {
	options := WithAllSentinel(nil)
	assert.Len(t, options, 1)
	assert.Equal(t, CategoryAllID, options[0].ID)
}
