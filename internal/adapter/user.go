package adapter

import (
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// User maps a wire user record into a profile. base absolutizes relative
// avatar paths.
func User(record map[string]any, base string) types.UserProfile {
	return types.UserProfile{
		ID:     normalize.String(record, "", "_id", "id"),
		Name:   normalize.String(record, "", "userName", "name", "username", "user_name"),
		Email:  normalize.String(record, "", "email"),
		Bio:    normalize.String(record, "", "bio"),
		Gender: normalize.String(record, "", "gender"),
		Avatar: avatar(record, base, "userProfilePicture", "profileImage", "avatar", "profile_picture"),
	}
}
