// Package services contains the client's application services: each call
// performs one API request and keeps the local session in step with it.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/session"
)

// AuthService covers login, registration and logout.
//
// Contract:
//   - Login / Register: on success the returned user becomes the active
//     session.
//   - Logout: the local session is cleared whether or not the server call
//     succeeds; the server error is still returned.
//   - Current: the active session, if any.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, username, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Session, bool)
}

type authService struct {
	client client.Client
	store  session.Store
}

func NewAuthService(c client.Client, s session.Store) AuthService {
	return &authService{client: c, store: s}
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	u, err := a.client.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	return a.activate(ctx, u)
}

func (a *authService) Register(ctx context.Context, username, email, password string) (models.Session, error) {
	u, err := a.client.Register(ctx, models.NewUser{Username: username, Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}
	return a.activate(ctx, u)
}

func (a *authService) activate(ctx context.Context, u models.User) (models.Session, error) {
	s := models.NewSession(u)
	if err := a.store.SetActive(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	_, apiErr := a.client.Logout(ctx)
	if apiErr != nil {
		apiErr = fmt.Errorf("logout: %w", apiErr)
	}
	return errors.Join(apiErr, a.store.ClearActive(ctx))
}

func (a *authService) Current(ctx context.Context) (models.Session, bool) {
	return a.store.GetActive(ctx)
}
