package screen

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/session"
	"github.com/platebook/platebook-client/internal/state"
	"github.com/platebook/platebook-client/internal/types"
)

// ProfileEdits is the edit sheet on the profile screen. Name, bio and
// gender are kept on the device only; there is no profile-update endpoint.
type ProfileEdits struct {
	Name   string
	Bio    string
	Gender string
}

// Profile is the profile screen: the signed-in user's card, their recipes,
// the local edit sheet, and the avatar upload.
type Profile struct {
	profiles service.IProfileService
	recipes  service.IRecipeService
	sessions *session.Manager
	book     *state.RecipeBook
	logger   *zap.Logger
	out      io.Writer
}

// NewProfile creates the profile screen controller.
func NewProfile(profiles service.IProfileService, recipes service.IRecipeService, sessions *session.Manager, book *state.RecipeBook, logger *zap.Logger, out io.Writer) *Profile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profile{profiles: profiles, recipes: recipes, sessions: sessions, book: book, logger: logger, out: out}
}

// Load refreshes the card from the backend when it can, falls back to the
// session copy when it cannot, and renders the user's own recipes with any
// still-pending local posts in front.
func (p *Profile) Load(ctx context.Context) {
	user, live := p.sessions.Current()
	if !live {
		fmt.Fprintln(p.out, "Sign in to see your profile.")
		return
	}

	if fetched, err := p.profiles.Get(ctx, user.ID); err != nil {
		p.logger.Warn("failed to refresh profile", zap.Error(err))
	} else {
		// Server wins for avatar and email, local edits win for the rest.
		fetched.Name = pick(user.Name, fetched.Name)
		fetched.Bio = pick(user.Bio, fetched.Bio)
		fetched.Gender = pick(user.Gender, fetched.Gender)
		user = fetched
		if err := p.sessions.UpdateUser(user); err != nil {
			p.logger.Warn("failed to persist profile", zap.Error(err))
		}
	}
	p.renderCard(user)

	mine, err := p.recipes.List(ctx, service.RecipeFilter{UserID: user.ID})
	if err != nil {
		p.logger.Warn("failed to load own recipes", zap.Error(err))
		fmt.Fprintln(p.out, "Your recipes are unavailable right now.")
		return
	}
	p.book.Replace(mine)
	for _, r := range p.book.Snapshot() {
		renderRecipeLine(p.out, r)
	}
}

// Edit applies the sheet to the session user. Nothing leaves the device.
func (p *Profile) Edit(edits ProfileEdits) {
	user, live := p.sessions.Current()
	if !live {
		return
	}
	if name := strings.TrimSpace(edits.Name); name != "" {
		user.Name = name
	}
	user.Bio = edits.Bio
	user.Gender = edits.Gender
	if err := p.sessions.UpdateUser(user); err != nil {
		p.logger.Warn("failed to persist profile edits", zap.Error(err))
	}
	p.renderCard(user)
}

// ChangeAvatar uploads the picked photo and stores the returned URL on the
// session user. Unlike the rest of the card, the avatar does persist.
func (p *Profile) ChangeAvatar(ctx context.Context, filename string, data []byte) {
	user, live := p.sessions.Current()
	if !live {
		return
	}
	url, err := p.profiles.UploadAvatar(ctx, user.ID, filename, data)
	if err != nil {
		p.logger.Warn("avatar upload failed", zap.Error(err))
		alert(p.out, "Error", "Failed to update profile picture.")
		return
	}
	user.Avatar = &url
	if err := p.sessions.UpdateUser(user); err != nil {
		p.logger.Warn("failed to persist avatar", zap.Error(err))
	}
	alert(p.out, "Success", "Profile picture updated!")
}

// SignOut ends the session and returns to the sign-in screen.
func (p *Profile) SignOut() {
	if err := p.sessions.SignOut(); err != nil {
		p.logger.Warn("sign-out failed", zap.Error(err))
	}
	fmt.Fprintln(p.out, "Signed out.")
}

func (p *Profile) renderCard(user types.UserProfile) {
	fmt.Fprintf(p.out, "%s <%s>\n", user.Name, user.Email)
	if user.Bio != "" {
		fmt.Fprintln(p.out, user.Bio)
	}
}

func pick(local, remote string) string {
	if local != "" {
		return local
	}
	return remote
}
