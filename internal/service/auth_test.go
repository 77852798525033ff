package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/auth"
	"cityguide/internal/domain"
	"cityguide/internal/event"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	hashed, err := auth.HashPassword("Str0ng!pass")
	require.NoError(t, err)

	roles := newFakeRoleRepo()
	users := newFakeUserRepo(roles)
	users.add(domain.User{
		Username:       "marcel",
		Email:          "marcel@example.com",
		HashedPassword: hashed,
		Roles:          []domain.Role{{ID: 1, Name: domain.RoleUser}},
	})

	jwtManager := auth.NewJWTManager(auth.JWTConfig{SecretKey: "test-secret"})
	return NewAuthService(users, jwtManager, event.NewNoopPublisher())
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "marcel@example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "marcel", result.User.Username)
	assert.Empty(t, result.User.HashedPassword)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "marcel@example.com", claims.Email)
	assert.True(t, claims.HasRole(domain.RoleUser))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "marcel@example.com", "wrong-password")
	requireDomainError(t, err, domain.Unauthorized, "incorrect credentials")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "Str0ng!pass")
	requireDomainError(t, err, domain.Unauthorized, "incorrect credentials")
}

// An unknown email and a wrong password must be indistinguishable.
func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	svc := newAuthFixture(t)

	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "Str0ng!pass")
	_, wrongErr := svc.Login(context.Background(), "marcel@example.com", "wrong-password")
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
