package api

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser adds the authenticated user to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// ctxGetUser retrieves the authenticated user, if any, from the context
func ctxGetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// ctxGetUserID is the authenticated user's id, or nil for anonymous callers
func ctxGetUserID(ctx context.Context) *string {
	if user, ok := ctxGetUser(ctx); ok {
		return &user.ID
	}
	return nil
}
