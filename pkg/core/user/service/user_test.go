package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/user/repository/dao/impl"
	"github.com/mcmikius/TILApp/pkg/core/user/service"
)

func TestRegisterHashesPasswordBeforePersisting(t *testing.T) {
	repo := impl.NewMemoryUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	public, err := svc.Register(ctx, "Jane", "jane1", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, public.ID)
	assert.Equal(t, "Jane", public.Name)
	assert.Equal(t, "jane1", public.Username)

	stored, err := repo.GetByUsername(ctx, "jane1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := impl.NewMemoryUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane1", "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Janet", "jane1", "other")
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestAuthenticate(t *testing.T) {
	repo := impl.NewMemoryUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Jane", "jane1", "secret")
	require.NoError(t, err)

	public, err := svc.Authenticate(ctx, "jane1", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, public.ID)

	_, wrongPassword := svc.Authenticate(ctx, "jane1", "wrong")
	_, unknownUser := svc.Authenticate(ctx, "nobody", "secret")

	// Unknown username and wrong password must be indistinguishable.
	assert.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, service.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestUserSerializationNeverExposesDigest(t *testing.T) {
	repo := impl.NewMemoryUserRepository()
	svc := service.NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane1", "secret")
	require.NoError(t, err)

	stored, err := repo.GetByUsername(ctx, "jane1")
	require.NoError(t, err)

	// Even the raw row hides the digest from JSON; the public projection
	// drops the field entirely.
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), stored.Password)

	public, err := json.Marshal(stored.ToPublic())
	require.NoError(t, err)
	assert.NotContains(t, string(public), "password")
	assert.NotContains(t, string(public), stored.Password)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := service.NewUserService(impl.NewMemoryUserRepository())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}
