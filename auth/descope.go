package auth

import (
	"fmt"
	"net/http"

	"github.com/descope/go-sdk/descope/client"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

// DescopeVerifier validates sessions issued by a Descope project.
type DescopeVerifier struct {
	client *client.DescopeClient
}

func NewDescopeVerifier(projectID string) (*DescopeVerifier, error) {
	descopeClient, err := client.NewWithConfig(&client.Config{ProjectID: projectID})
	if err != nil {
		return nil, errs.NewConfigError("DESCOPE_PROJECT_ID", err)
	}
	return &DescopeVerifier{client: descopeClient}, nil
}

func (v *DescopeVerifier) Verify(r *http.Request) (*Identity, error) {
	if !HasCredentials(r) {
		return nil, errs.NewMissingTokenError()
	}

	authorized, token, err := v.client.Auth.ValidateSessionWithRequest(r)
	if err != nil {
		return nil, errs.NewInvalidTokenError(err)
	}
	if !authorized || token == nil || token.ID == "" {
		return nil, errs.NewInvalidTokenError(fmt.Errorf("session not authorized"))
	}

	return &Identity{
		UserID:          token.ID,
		Email:           stringClaim(token.Claims, "email"),
		FirstName:       stringClaim(token.Claims, "given_name"),
		LastName:        stringClaim(token.Claims, "family_name"),
		ProfileImageURL: stringClaim(token.Claims, "picture"),
	}, nil
}
