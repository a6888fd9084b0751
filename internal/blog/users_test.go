package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitmishra16/Blogger/internal/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", user.Password) // stored hashed

	got, err := svc.Login(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "other@example.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Register(ctx, RegisterInput{Username: "other", Email: "alice@example.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Register(ctx, RegisterInput{Username: "", Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAccount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	seedUser(t, "bob")

	updated, err := svc.UpdateAccount(ctx, alice.ID, UpdateAccountInput{
		Bio:       "writer",
		ImageFile: "abc123.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "writer", updated.Bio)
	assert.Equal(t, "abc123.png", updated.ImageFile)
	assert.Equal(t, "alice", updated.Username)

	_, err = svc.UpdateAccount(ctx, alice.ID, UpdateAccountInput{Username: "bob"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.UpdateAccount(ctx, 9999, UpdateAccountInput{Bio: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "old password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetPassword(ctx, user.ID, "new password"))

	_, err = svc.Login(ctx, "alice@example.com", "old password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice@example.com", "new password")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.SetPassword(ctx, 9999, "whatever"), ErrNotFound)
}
