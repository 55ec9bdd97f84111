package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

// SessionCookie carries the session token for browser clients that cannot set headers.
const SessionCookie = "session"

// Identity is what the login provider asserts about the caller.
type Identity struct {
	UserID          string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// SessionVerifier turns an incoming request into an Identity. It returns an
// *errs.ApiErr with status 401 when the request carries no valid session.
type SessionVerifier interface {
	Verify(r *http.Request) (*Identity, error)
}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// HasCredentials reports whether the request presents any session token at all.
func HasCredentials(r *http.Request) bool {
	return TokenFromRequest(r) != ""
}

// NewFromConfig builds the verifier selected by AUTH_PROVIDER (jwt or descope).
func NewFromConfig(cfg map[string]string) (SessionVerifier, error) {
	provider := config.GetString(cfg, "AUTH_PROVIDER", "jwt")
	switch provider {
	case "jwt":
		secret := config.GetString(cfg, "SESSION_SECRET", "")
		if secret == "" {
			return nil, errs.NewEnvironmentVariableError("SESSION_SECRET")
		}
		verifier, err := NewJWTVerifier(secret, config.GetSeconds(cfg, "SESSION_TTL_SECONDS", 7*24*3600))
		if err != nil {
			return nil, err
		}
		return verifier, nil
	case "descope":
		projectID := config.GetString(cfg, "DESCOPE_PROJECT_ID", "")
		if projectID == "" {
			return nil, errs.NewEnvironmentVariableError("DESCOPE_PROJECT_ID")
		}
		verifier, err := NewDescopeVerifier(projectID)
		if err != nil {
			return nil, err
		}
		return verifier, nil
	default:
		return nil, errs.NewConfigError("AUTH_PROVIDER", fmt.Errorf("unsupported provider %q", provider))
	}
}

func stringClaim(claims map[string]interface{}, key string) *string {
	raw, ok := claims[key].(string)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}
