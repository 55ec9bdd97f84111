package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

// Claims is the session payload issued by the login flow.
type Claims struct {
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 session tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTVerifier(secret string, ttl time.Duration) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required but was empty")
	}
	return &JWTVerifier{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a session token for the identity. The login flow and tests use it.
func (v *JWTVerifier) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:           deref(id.Email),
		FirstName:       deref(id.FirstName),
		LastName:        deref(id.LastName),
		ProfileImageURL: deref(id.ProfileImageURL),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (v *JWTVerifier) Verify(r *http.Request) (*Identity, error) {
	raw := TokenFromRequest(r)
	if raw == "" {
		return nil, errs.NewMissingTokenError()
	}
	return v.Parse(raw)
}

// Parse validates a raw token and returns the identity it carries.
func (v *JWTVerifier) Parse(raw string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, errs.NewTokenExpiredError()
	}
	if err != nil {
		return nil, errs.NewInvalidTokenError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errs.NewInvalidTokenError(fmt.Errorf("invalid token claims"))
	}

	return &Identity{
		UserID:          claims.Subject,
		Email:           optional(claims.Email),
		FirstName:       optional(claims.FirstName),
		LastName:        optional(claims.LastName),
		ProfileImageURL: optional(claims.ProfileImageURL),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
