package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/session"
	"github.com/dmitrijs2005/useraccount/internal/common"
)

// ProfileService changes the logged-in user's credentials. Both calls need
// an active session (common.ErrNoActiveSession otherwise) and replace it
// with the record the server returns.
type ProfileService interface {
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (models.Session, error)
	ChangeEmail(ctx context.Context, password, newEmail string) (models.Session, error)
}

type profileService struct {
	client client.Client
	store  session.Store
}

func NewProfileService(c client.Client, s session.Store) ProfileService {
	return &profileService{client: c, store: s}
}

func (p *profileService) ChangePassword(ctx context.Context, currentPassword, newPassword string) (models.Session, error) {
	cur, ok := p.store.GetActive(ctx)
	if !ok {
		return models.Session{}, common.ErrNoActiveSession
	}

	u, err := p.client.ChangePassword(ctx, cur.ID, currentPassword, newPassword)
	if err != nil {
		return models.Session{}, fmt.Errorf("change password: %w", err)
	}
	return p.replace(ctx, u)
}

func (p *profileService) ChangeEmail(ctx context.Context, password, newEmail string) (models.Session, error) {
	cur, ok := p.store.GetActive(ctx)
	if !ok {
		return models.Session{}, common.ErrNoActiveSession
	}

	u, err := p.client.ChangeEmail(ctx, cur.ID, password, newEmail)
	if err != nil {
		return models.Session{}, fmt.Errorf("change email: %w", err)
	}
	return p.replace(ctx, u)
}

func (p *profileService) replace(ctx context.Context, u models.User) (models.Session, error) {
	s := models.NewSession(u)
	if err := p.store.SetActive(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}
