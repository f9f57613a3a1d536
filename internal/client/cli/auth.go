package cli

import (
	"context"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// is persisted by the service, the controller switches to the authenticated
// state and lands on a freshly loaded dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	sess, err := a.auth.Login(reqCtx, email, string(password))
	if err != nil {
		return a.fail(ctx, err)
	}

	a.session = sess
	a.notify("logged in as %s", a.displayName())
	_ = a.Dashboard(ctx)
	return nil
}

// Register prompts for the account fields and creates the account. A new
// registration does not authenticate; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	in := &models.RegisterInput{}
	var err error

	if in.Username, err = getSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if in.Role, err = getSimpleText(a.reader, "Role (teacher or student)", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = string(password)

	reqCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.auth.Register(reqCtx, in); err != nil {
		return a.fail(ctx, err)
	}

	a.notify("account created, you can log in now")
	return nil
}

// Logout clears the persisted session and resets the view to the dashboard.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.session = nil
	a.view.Activate(SectionDashboard)
	a.notify("logged out")
	return nil
}
