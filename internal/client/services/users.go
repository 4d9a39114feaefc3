package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// UserService lists registered users.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func (u *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := u.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
