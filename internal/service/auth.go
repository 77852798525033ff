package service

import (
	"context"

	"cityguide/internal/auth"
	"cityguide/internal/domain"
	"cityguide/internal/event"
	"cityguide/internal/storage"
)

// AuthService handles authentication operations.
type AuthService struct {
	users     storage.UserRepository
	jwt       *auth.JWTManager
	publisher event.Publisher
}

func NewAuthService(
	users storage.UserRepository,
	jwt *auth.JWTManager,
	publisher event.Publisher,
) *AuthService {
	return &AuthService{users: users, jwt: jwt, publisher: publisher}
}

// LoginResult contains the signed session token and the user's public
// fields after a successful login.
type LoginResult struct {
	Token string
	User  *domain.User
}

// Login authenticates a user by email and password and returns a
// signed session token. An unknown email fails exactly like a wrong
// password; the caller cannot tell which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewError(domain.Unauthorized, "incorrect credentials")
	}

	if err := auth.CheckPassword(password, user.HashedPassword); err != nil {
		return nil, domain.NewError(domain.Unauthorized, "incorrect credentials")
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	token, _, err := s.jwt.GenerateToken(auth.TokenPayload{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Roles:    roles,
	})
	if err != nil {
		return nil, domain.NewError(domain.Internal, "session token could not be signed")
	}

	_ = s.publisher.Publish(ctx, domain.UserLoggedInEvent(user.ID, user.Email))

	return &LoginResult{Token: token, User: user.Public()}, nil
}

// ValidateToken verifies a session token and returns its claims.
func (s *AuthService) ValidateToken(token string) (*auth.Claims, error) {
	return s.jwt.ValidateToken(token)
}
