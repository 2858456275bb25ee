package adapter

import (
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// Like maps a wire reaction record. Unknown polarity strings default to
// "like" rather than dropping the record.
func Like(record map[string]any) types.Like {
	polarity := types.LikeType(normalize.String(record, string(types.LikeTypeLike), "type"))
	if polarity != types.LikeTypeDislike {
		polarity = types.LikeTypeLike
	}
	return types.Like{
		ID:       normalize.String(record, "", "_id", "id"),
		RecipeID: normalize.String(record, "", "recipe_id", "recipeId"),
		UserID:   normalize.String(record, "", "user_id", "userId"),
		Type:     polarity,
	}
}

// Likes maps a list payload, tolerating any of the known envelopes.
func Likes(payload any) []types.Like {
	records := normalize.UnwrapArray(payload, "likes")
	out := make([]types.Like, 0, len(records))
	for _, record := range records {
		out = append(out, Like(record))
	}
	return out
}
