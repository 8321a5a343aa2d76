package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hrms-backend-go/internal/domain/auth"
	"github.com/staffhub/hrms-backend-go/internal/domain/user"
	"github.com/staffhub/hrms-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := f.users[u.Email]; ok {
		return user.User{}, user.ErrUserEmailExists
	}
	u.ID = "user-" + u.Email
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.users[u.Email] = u
	return nil
}

func newTestService(repo user.UserRepository) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService)
}

func TestRegisterNormalizesRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	tokens, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@StaffHub.io",
		Password: "password123",
		Role:     "Super Admin",
	})
	require.NoError(t, err)

	assert.Equal(t, string(user.RoleSuperAdmin), tokens.User.Role)
	assert.Equal(t, "alice@staffhub.io", tokens.User.Email)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	stored, err := repo.GetByEmail(context.Background(), "alice@staffhub.io")
	require.NoError(t, err)
	assert.Equal(t, user.RoleSuperAdmin, stored.Role)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterDefaultsToEmployee(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	tokens, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@staffhub.io",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleEmployee), tokens.User.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Carol",
		Email:    "carol@staffhub.io",
		Password: "password123",
		Role:     "manager",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), user.User{
		Name:         "Alice",
		Email:        "alice@staffhub.io",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		IsActive:     true,
	})
	require.NoError(t, err)

	svc := newTestService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		tokens, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "alice@staffhub.io",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.Equal(t, "alice@staffhub.io", tokens.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "alice@staffhub.io",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@staffhub.io",
			Password: "password123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	_, err := repo.Create(context.Background(), user.User{
		Name:         "Dave",
		Email:        "dave@staffhub.io",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		IsActive:     false,
	})
	require.NoError(t, err)

	svc := newTestService(repo)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dave@staffhub.io",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}
