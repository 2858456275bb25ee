// Platebook is a terminal front-end for the recipe-sharing backend. It
// signs in (or restores the previous session), then drives the screens from
// a small command loop.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/platebook/platebook-client/config"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/screen"
	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/session"
	"github.com/platebook/platebook-client/internal/state"
	"github.com/platebook/platebook-client/internal/types"
)

type app struct {
	sessions *session.Manager

	feed   *screen.Feed
	search *screen.Search
	auth   *screen.SignIn

	recipes       service.IRecipeService
	likes         service.ILikeService
	notifications service.INotificationService
	profiles      service.IProfileService

	book   *state.RecipeBook
	logger *zap.Logger
	out    *os.File
}

func main() {
	logger, err := newLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	store, err := session.OpenStore(cfg.SessionDBPath)
	if err != nil {
		logger.Fatal("failed to open session store", zap.Error(err))
	}

	client := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	sessions := session.NewManager(store, client, logger)

	authSvc := service.NewAuthService(client, logger)
	categorySvc := service.NewCategoryService(client, logger)
	recipeSvc := service.NewRecipeService(client, categorySvc, logger)

	out := os.Stdout
	a := &app{
		sessions:      sessions,
		feed:          screen.NewFeed(recipeSvc, categorySvc, logger, out),
		search:        screen.NewSearch(recipeSvc, logger, out),
		auth:          screen.NewSignIn(authSvc, sessions, logger, out),
		recipes:       recipeSvc,
		likes:         service.NewLikeService(client, logger),
		notifications: service.NewNotificationService(client, logger),
		profiles:      service.NewProfileService(client, logger),
		book:          state.NewSeededRecipeBook(),
		logger:        logger,
		out:           out,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if restored, err := sessions.Restore(); err != nil {
		logger.Warn("failed to restore session", zap.Error(err))
	} else if restored {
		user, _ := sessions.Current()
		fmt.Fprintf(out, "Welcome back, %s!\n", user.Name)
	}

	a.run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func (a *app) run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(a.out, `Commands: login <email> <password> | register <name> <email> <password>
  feed | select <category-id> | addcategory <name> | search <query> | show <recipe-id>
  like <recipe-id> | dislike <recipe-id> | post <title> ; <description> ; <category-id>
  notifications | open <notification-id> | profile | signout | quit`)

	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		a.dispatch(ctx, fields[0], fields[1:])
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "login":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "usage: login <email> <password>")
			return
		}
		a.auth.Login(ctx, args[0], args[1])
	case "register":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "usage: register <name> <email> <password>")
			return
		}
		a.auth.Register(ctx, service.RegisterInput{Name: args[0], Email: args[1], Password: args[2]})
	case "feed":
		a.feed.Load(ctx)
	case "select":
		if len(args) < 1 {
			fmt.Fprintln(a.out, "usage: select <category-id>")
			return
		}
		a.feed.Select(ctx, args[0])
	case "addcategory":
		a.feed.CreateCategory(ctx, strings.Join(args, " "))
	case "search":
		a.search.Run(ctx, strings.Join(args, " "))
	case "show":
		a.show(ctx, args)
	case "like":
		a.react(ctx, args, types.LikeTypeLike)
	case "dislike":
		a.react(ctx, args, types.LikeTypeDislike)
	case "post":
		a.post(ctx, strings.Join(args, " "))
	case "notifications":
		if user, ok := a.requireUser(); ok {
			screen.NewNotifications(a.notifications, user.ID, a.logger, a.out).Load(ctx)
		}
	case "open":
		if len(args) < 1 {
			fmt.Fprintln(a.out, "usage: open <notification-id>")
			return
		}
		if user, ok := a.requireUser(); ok {
			n := screen.NewNotifications(a.notifications, user.ID, a.logger, a.out)
			n.Load(ctx)
			n.Open(ctx, args[0])
		}
	case "profile":
		if _, ok := a.requireUser(); ok {
			a.profileScreen().Load(ctx)
		}
	case "signout":
		a.profileScreen().SignOut()
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
	}
}

func (a *app) show(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: show <recipe-id>")
		return
	}
	user, _ := a.sessions.Current()
	detail := screen.NewDetail(a.recipes, a.likes, user.ID, a.logger, a.out)
	_ = detail.Load(ctx, args[0])
}

func (a *app) react(ctx context.Context, args []string, polarity types.LikeType) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "usage: like|dislike <recipe-id>")
		return
	}
	user, ok := a.requireUser()
	if !ok {
		return
	}
	detail := screen.NewDetail(a.recipes, a.likes, user.ID, a.logger, a.out)
	if err := detail.Load(ctx, args[0]); err != nil {
		return
	}
	detail.React(ctx, polarity)
}

// post parses "title ; description ; category-id".
func (a *app) post(ctx context.Context, input string) {
	user, ok := a.requireUser()
	if !ok {
		return
	}
	parts := strings.SplitN(input, ";", 3)
	form := screen.CreateForm{Title: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		form.Description = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		form.CategoryID = strings.TrimSpace(parts[2])
	}
	screen.NewCreate(a.recipes, a.book, user.ID, a.logger, a.out).Submit(ctx, form)
}

func (a *app) profileScreen() *screen.Profile {
	return screen.NewProfile(a.profiles, a.recipes, a.sessions, a.book, a.logger, a.out)
}

func (a *app) requireUser() (types.UserProfile, bool) {
	user, live := a.sessions.Current()
	if !live {
		fmt.Fprintln(a.out, "Sign in first.")
		return types.UserProfile{}, false
	}
	return user, true
}
