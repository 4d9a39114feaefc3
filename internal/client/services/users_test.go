package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_List(t *testing.T) {
	fc := &fakeClient{ListRet: []models.User{joe}}
	users, err := NewUserService(fc).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{joe}, users)

	fc = &fakeClient{ListErr: &client.APIError{Kind: client.KindSessionUserMismatch, Status: 403}}
	_, err = NewUserService(fc).List(context.Background())
	assert.Equal(t, client.KindSessionUserMismatch, client.KindOf(err))
}
