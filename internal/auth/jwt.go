package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// JWTManager issues and verifies HS256 access tokens that carry the acting
// principal (id, name, role).
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// actorClaims extends standard JWT claims with the actor's display name and role.
type actorClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

// GenerateAccessToken creates a signed token with the actor ID as subject.
func (m *JWTManager) GenerateAccessToken(a domain.Actor) (string, error) {
	if a.ID == uuid.Nil {
		return "", errors.New("actor id is required")
	}
	if !a.Role.IsValid() {
		return "", fmt.Errorf("invalid role %q", a.Role)
	}

	now := m.now()
	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: a.Name,
		Role: a.Role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a token and returns the actor it names.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &actorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, errors.New("invalid token claims")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return domain.Actor{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Actor{}, fmt.Errorf("invalid role claim %q", claims.Role)
	}

	return domain.Actor{ID: id, Name: claims.Name, Role: role}, nil
}

// GenerateOpaqueToken creates a cryptographically random one-time token.
// Returns both the raw token (handed to the user) and its SHA-256 hash (stored).
func GenerateOpaqueToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
