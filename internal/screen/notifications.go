package screen

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/types"
)

// Notifications is the activity screen for the signed-in user.
type Notifications struct {
	svc    service.INotificationService
	userID string
	logger *zap.Logger
	out    io.Writer

	items []types.Notification
}

// NewNotifications creates the notifications screen controller.
func NewNotifications(svc service.INotificationService, userID string, logger *zap.Logger, out io.Writer) *Notifications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifications{svc: svc, userID: userID, logger: logger, out: out}
}

// Load fetches and renders the activity list, unread items first marked.
func (n *Notifications) Load(ctx context.Context) {
	items, err := n.svc.List(ctx, n.userID)
	if err != nil {
		n.logger.Warn("failed to load notifications", zap.Error(err))
		fmt.Fprintln(n.out, "Notifications are unavailable right now.")
		return
	}
	n.items = items

	if len(items) == 0 {
		fmt.Fprintln(n.out, "No notifications yet.")
		return
	}
	for _, item := range items {
		marker := " "
		if !item.Read {
			marker = "*"
		}
		fmt.Fprintf(n.out, "%s %s: %s\n", marker, item.Title, item.Message)
	}
}

// Open marks the tapped notification read, locally and on the backend. The
// local flip stays even if the write fails, matching an optimistic tap.
func (n *Notifications) Open(ctx context.Context, id string) {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Read = true
			break
		}
	}
	if err := n.svc.MarkRead(ctx, id); err != nil {
		n.logger.Warn("failed to mark notification read", zap.String("id", id), zap.Error(err))
	}
}

// Unread counts the locally unread items, for the tab badge.
func (n *Notifications) Unread() int {
	count := 0
	for _, item := range n.items {
		if !item.Read {
			count++
		}
	}
	return count
}

// Items returns the loaded list, for tests.
func (n *Notifications) Items() []types.Notification { return n.items }
