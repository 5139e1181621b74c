package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// clockSkew is tolerated on exp/iat between the identity provider and us.
const clockSkew = 30 * time.Second

// JWTManager verifies access tokens minted by the identity provider. It can
// also mint tokens, which the issue-token command and tests rely on.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTManager creates a manager for HS256 tokens from issuer.
// secret must be at least 32 characters; config validation enforces it.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken signs a token whose subject is userID.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the caller of a valid token. A token without a
// role claim belongs to a learner. Every failure wraps domain.ErrUnauthorized.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, domain.UserRole, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("empty token: %w", domain.ErrUnauthorized)
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, m.key); err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, "", fmt.Errorf("subject %q is not a user id: %w", claims.Subject, domain.ErrUnauthorized)
	}

	role := domain.UserRole(claims.Role)
	if role == "" {
		role = domain.UserRoleLearner
	}
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("unknown role %q: %w", claims.Role, domain.ErrUnauthorized)
	}

	return userID, role, nil
}

func (m *JWTManager) key(*jwt.Token) (any, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("no signing secret configured")
	}
	return m.secret, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := m.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, role.String(), nil
}
