package adapter

import (
	"time"

	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// Notification maps a wire activity record.
func Notification(record map[string]any) types.Notification {
	return types.Notification{
		ID:        normalize.String(record, "", "_id", "id"),
		Type:      normalize.String(record, "", "type"),
		Title:     normalize.String(record, "", "title"),
		Message:   normalize.String(record, "", "message", "text", "body"),
		Read:      normalize.Bool(record, false, "read", "isRead", "is_read"),
		CreatedAt: timestamp(record, time.Time{}, "createdAt", "created_at", "date"),
		ActorID:   normalize.String(record, "", "actor_id", "actorId", "from_user_id"),
		RecipeID:  normalize.String(record, "", "recipe_id", "recipeId"),
	}
}

// Notifications maps a list payload, tolerating any of the known envelopes.
func Notifications(payload any) []types.Notification {
	records := normalize.UnwrapArray(payload, "notifications")
	out := make([]types.Notification, 0, len(records))
	for _, record := range records {
		out = append(out, Notification(record))
	}
	return out
}
