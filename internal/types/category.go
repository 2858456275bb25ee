package types

// Category is a recipe category as stored by the backend. The synthetic
// "All" entry used by the feed screen is a presentation concern and never
// appears here.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
