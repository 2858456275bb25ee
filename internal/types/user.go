package types

// UserProfile is the client-side view of a user record. Name, bio and
// gender edits stay local; only the avatar upload is persisted.
type UserProfile struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Bio    string  `json:"bio,omitempty"`
	Gender string  `json:"gender,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
