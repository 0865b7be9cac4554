package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/internal/infrastructure/database"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedAuth(t *testing.T, env *testEnv) {
	t.Helper()
	require.NoError(t, database.SeedDefaultData(context.Background(), env.db, &config.AdminConfig{
		Email:    "Admin@Hotel.test",
		Password: "s3cret-pass",
	}, zap.NewNop()))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	seedAuth(t, env)
	ctx := context.Background()

	out, err := env.auth.Login(ctx, &LoginInput{Email: "admin@hotel.test", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.EqualValues(t, 3600, out.ExpiresIn)
	assert.Equal(t, enum.RoleAdmin, out.User.Role.Name)

	claims, err := env.jwt.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, enum.RoleAdmin, claims.Role)

	_, err = env.auth.Login(ctx, &LoginInput{Email: "admin@hotel.test", Password: "wrong"})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)

	_, err = env.auth.Login(ctx, &LoginInput{Email: "nobody@hotel.test", Password: "s3cret-pass"})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	seedAuth(t, env)
	ctx := context.Background()

	user, err := env.auth.CreateUser(ctx, &CreateUserInput{
		Email: "cashier@hotel.test", Password: "till-pass", FullName: "Front Desk", Role: "Cashier",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.RoleCashier, user.Role.Name)

	require.NoError(t, env.db.Model(&entity.UserAccount{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = env.auth.Login(ctx, &LoginInput{Email: "cashier@hotel.test", Password: "till-pass"})
	assert.Equal(t, apperror.ErrAccountDisabled, err)
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	seedAuth(t, env)
	ctx := context.Background()

	out, err := env.auth.Login(ctx, &LoginInput{Email: "admin@hotel.test", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := env.auth.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, refreshed.User.ID)

	_, err = env.auth.RefreshToken(ctx, out.AccessToken)
	assert.Equal(t, apperror.ErrInvalidToken, err)

	stranger, err := env.jwt.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)
	_, err = env.auth.RefreshToken(ctx, stranger)
	assert.Equal(t, apperror.ErrInvalidToken, err)
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	seedAuth(t, env)
	ctx := context.Background()

	_, err := env.auth.CreateUser(ctx, &CreateUserInput{Email: "w@hotel.test", Password: "pw", Role: "chef"})
	assert.True(t, apperror.IsNotFound(err))

	_, err = env.auth.CreateUser(ctx, &CreateUserInput{Email: "ADMIN@hotel.test", Password: "pw", Role: "waiter"})
	assert.True(t, apperror.IsConflict(err))

	user, err := env.auth.CreateUser(ctx, &CreateUserInput{Email: " Waiter@Hotel.test ", Password: "pw", FullName: "Ravi", Role: "waiter"})
	require.NoError(t, err)
	assert.Equal(t, "waiter@hotel.test", user.Email)

	current, err := env.auth.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", current.FullName)

	_, err = env.auth.GetCurrentUser(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
