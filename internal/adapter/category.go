package adapter

import (
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// Category maps a wire category record. The backend stores the display name
// under categoryName or name depending on which write path created it.
func Category(record map[string]any) types.Category {
	return types.Category{
		ID:   normalize.String(record, "", "_id", "id"),
		Name: normalize.String(record, "", "categoryName", "name"),
	}
}

// Categories maps a list payload, tolerating any of the known envelopes.
func Categories(payload any) []types.Category {
	records := normalize.UnwrapArray(payload, "categories")
	out := make([]types.Category, 0, len(records))
	for _, record := range records {
		out = append(out, Category(record))
	}
	return out
}
