package client

import (
	"context"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// Client is the user-account REST contract. Every method issues exactly
// one request and returns an *APIError on failure.
type Client interface {
	Register(ctx context.Context, u models.NewUser) (models.User, error)
	Login(ctx context.Context, c models.Credentials) (models.User, error)
	Logout(ctx context.Context) (models.Message, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ChangePassword(ctx context.Context, id models.UserID, currentPassword, newPassword string) (models.User, error)
	ChangeEmail(ctx context.Context, id models.UserID, password, newEmail string) (models.User, error)
}
