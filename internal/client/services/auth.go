// Package services contains the application services of the ScanMark client.
// This file defines the authentication service: login, register, session
// restore from the local store, and logout housekeeping.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/scanmark/internal/client/api"
	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/session"
	"github.com/dmitrijs2005/scanmark/internal/common"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Register: validate fields client-side, then create the account.
//     Registering does not authenticate.
//   - Restore: rehydrate a persisted session; an expired token clears the
//     store and returns common.ErrSessionExpired.
//   - Logout: clear the persisted session and the client's token.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, in *models.RegisterInput) error
	Restore(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the API client and the
// local session store.
type authService struct {
	client   api.Client
	store    session.Store
	validate *validator.Validate
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{
		client:   client,
		store:    store,
		validate: validator.New(),
	}
}

// tokenClaims mirrors the backend's JWT payload. The client never verifies
// the signature (it has no key); claims are read only for expiry and as a
// role fallback.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func parseClaims(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenExpiry reads the expiry claim out of a bearer token without
// verifying it. The second return is false for opaque or expiry-less
// tokens.
func TokenExpiry(token string) (time.Time, bool) {
	claims, err := parseClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Login authenticates and persists the returned session so it survives
// restarts until logout.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// Register validates the input locally and creates the account. Validation
// failures never reach the network.
func (a *authService) Register(ctx context.Context, in *models.RegisterInput) error {
	if err := a.validate.StructCtx(ctx, in); err != nil {
		return err
	}
	return a.client.Register(ctx, in)
}

// Restore loads a persisted session, rearms the API client's token and
// fills a missing user record from the token claims. Returns (nil, nil)
// when nothing is stored.
func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	claims, err := parseClaims(sess.Token)
	if err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			_ = a.store.Clear(ctx)
			return nil, common.ErrSessionExpired
		}
		if sess.User.ID == "" {
			sess.User.ID = claims.UserID
			sess.User.Email = claims.Email
			sess.User.Role = claims.Role
		}
	}

	a.client.SetToken(sess.Token)
	return sess, nil
}

// Logout wipes both local-storage keys and the in-memory token.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.client.ClearToken()
	return nil
}

// Close releases the underlying store.
func (a *authService) Close(ctx context.Context) error {
	return a.store.Close()
}
