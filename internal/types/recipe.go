package types

import "time"

// Persistence tells whether a record is backed by the server or was
// synthesized locally after a failed write.
type Persistence string

const (
	// Persisted records came back from the backend.
	Persisted Persistence = "persisted"
	// PendingLocalOnly records exist only on this device; the create call
	// failed and the record was fabricated so the action still shows up.
	PendingLocalOnly Persistence = "pending_local_only"
)

// Ref is a normalized reference to another entity, resolved from either an
// embedded object or a bare identifier.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Zero reports whether the reference is absent.
func (r Ref) Zero() bool {
	return r.ID == "" && r.Name == ""
}

// AuthorRef identifies the user that posted a recipe.
type AuthorRef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

// Recipe is the client-side view of a recipe record.
type Recipe struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       *string     `json:"image,omitempty"`
	Categories  []Ref       `json:"categories"`
	Author      AuthorRef   `json:"author"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Persistence Persistence `json:"persistence"`
}

// Local reports whether the recipe is a speculative, device-only record.
func (r Recipe) Local() bool {
	return r.Persistence == PendingLocalOnly
}
