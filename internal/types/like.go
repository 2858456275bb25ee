package types

// LikeType is the polarity of a reaction.
type LikeType string

const (
	LikeTypeLike    LikeType = "like"
	LikeTypeDislike LikeType = "dislike"
)

// Like is a single reaction record. The backend holds at most one per
// (user, recipe) pair; the toggle flow enforces that invariant.
type Like struct {
	ID       string   `json:"id"`
	RecipeID string   `json:"recipe_id"`
	UserID   string   `json:"user_id"`
	Type     LikeType `json:"type"`
}

// LikeCounts holds the per-recipe reaction tallies.
type LikeCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}
