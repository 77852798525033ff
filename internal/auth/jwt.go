package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification.
// The underlying reason is deliberately not exposed.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT claims for session tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64    `json:"uid"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
}

// HasRole reports whether the token carries the named role.
func (c *Claims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// JWTConfig holds configuration for JWT token generation.
type JWTConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	Issuer    string
}

// DefaultJWTConfig returns the defaults for JWT configuration.
// Sessions last ten hours.
func DefaultJWTConfig() JWTConfig {
	return JWTConfig{
		TokenTTL: 10 * time.Hour,
		Issuer:   "cityguide",
	}
}

type JWTManager struct {
	config JWTConfig
}

func NewJWTManager(config JWTConfig) *JWTManager {
	if config.TokenTTL == 0 {
		config.TokenTTL = DefaultJWTConfig().TokenTTL
	}
	return &JWTManager{config: config}
}

// TokenPayload contains the information needed to generate a token.
type TokenPayload struct {
	UserID   int64
	Email    string
	Username string
	Roles    []string
}

// GenerateToken signs a session token for the payload with the fixed TTL.
func (m *JWTManager) GenerateToken(payload TokenPayload) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.config.TokenTTL)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(payload.UserID, 10),
			Issuer:    m.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserID:   payload.UserID,
		Email:    payload.Email,
		Username: payload.Username,
		Roles:    payload.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.config.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies a session token. All failures collapse into
// ErrInvalidToken so no verification detail leaks to the caller.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.SecretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// TokenTTL returns the configured session lifetime.
func (m *JWTManager) TokenTTL() time.Duration {
	return m.config.TokenTTL
}
