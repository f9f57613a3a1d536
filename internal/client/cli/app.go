// Package cli is the application controller: it owns the session state, the
// navigation state machine and the command handlers, and wires user input to
// the services and renderers.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/scanmark/internal/client/api"
	"github.com/dmitrijs2005/scanmark/internal/client/config"
	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/progress"
	"github.com/dmitrijs2005/scanmark/internal/client/services"
	"github.com/dmitrijs2005/scanmark/internal/client/session"
	"github.com/dmitrijs2005/scanmark/internal/common"
	"github.com/dmitrijs2005/scanmark/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the client application controller. All mutable state — the current
// session, the active section — lives here, never in package globals.
type App struct {
	config *config.Config
	logger logging.Logger

	api    api.Client
	auth   services.AuthService
	upload services.UploadService

	view    *ViewState
	session *models.Session

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the application together: local session store, API client
// and the services on top of them.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := session.Open(ctx, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client := api.NewHTTPClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	sim := progress.NewSimulator(cfg.ProgressTickInterval)

	return &App{
		config: cfg,
		logger: logger,
		api:    client,
		auth:   services.NewAuthService(client, store),
		upload: services.NewUploadService(client, sim),
		view:   NewViewState(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores any persisted session and enters the REPL. It returns when
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// restoreSession rehydrates a persisted session so a restart lands the user
// back where they were. Failures degrade to the logged-out prompt.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.auth.Restore(ctx)
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) {
			fmt.Fprintln(a.out, "Session expired, please log in again")
			return
		}
		a.logger.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if sess == nil {
		return
	}
	a.session = sess
	fmt.Fprintf(a.out, "Welcome back, %s\n", a.displayName())
}

func (a *App) displayName() string {
	if a.session == nil {
		return ""
	}
	if a.session.User.Username != "" {
		return a.session.User.Username
	}
	return a.session.User.Email
}

// status builds the prompt decoration: user, role, active section and the
// token expiry when the token carries one.
func (a *App) status() string {
	if a.session == nil {
		return "guest"
	}
	s := a.displayName()
	if a.session.User.Role != "" {
		s += "/" + a.session.User.Role
	}
	s += " " + string(a.view.Active())
	if exp, ok := services.TokenExpiry(a.session.Token); ok {
		s += " exp " + exp.Format("15:04")
	}
	return s
}

// requireSession is the auth short-circuit: handlers that need a session
// call it before doing anything else, so an unauthenticated command never
// reaches the network.
func (a *App) requireSession() error {
	if a.session == nil {
		return common.ErrNoSession
	}
	return nil
}

// notify shows a success notification.
func (a *App) notify(format string, args ...any) {
	fmt.Fprintf(a.out, "[ok] "+format+"\n", args...)
}

// fail surfaces err as a user-facing notification and returns it. Backend
// messages are shown as-is; sentinel errors get a friendlier wording. An
// unauthorized response drops the now-useless session.
func (a *App) fail(ctx context.Context, err error) error {
	msg := err.Error()

	switch {
	case errors.Is(err, common.ErrNoSession):
		msg = "please log in first"
	case errors.Is(err, common.ErrSessionExpired), errors.Is(err, api.ErrUnauthorized):
		msg = "session expired, please log in again"
		a.session = nil
		if lerr := a.auth.Logout(ctx); lerr != nil {
			a.logger.Warn(ctx, "session cleanup failed", "error", lerr)
		}
	case errors.Is(err, api.ErrUnavailable):
		msg = "server unavailable, try again later"
	case errors.Is(err, common.ErrFileTooLarge):
		msg = "file too large, the limit is 16 MB"
	case errors.Is(err, common.ErrFileTypeNotAllowed):
		msg = "file type not allowed: use PNG, JPEG, PDF or DOCX"
	case errors.Is(err, common.ErrNoFileSelected):
		msg = "no usable file at that path"
	}

	a.logger.Error(ctx, "command failed", "error", err)
	fmt.Fprintf(a.out, "[error] %s\n", msg)
	return err
}
