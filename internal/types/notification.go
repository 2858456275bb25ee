package types

import "time"

// Notification is an activity item shown on the notifications screen.
// Type is free-form on the wire ("like", "dislike", "rating", "comment", ...).
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	ActorID   string    `json:"actor_id,omitempty"`
	RecipeID  string    `json:"recipe_id,omitempty"`
}
