// Package access resolves bearer tokens to users and applies the role and
// ownership rules. It keeps no state between requests: every Authenticate
// call re-reads the user so role changes apply on the next request.
package access

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/metrics"
	"github.com/marqspnosa/shopwise/internal/models"
	"github.com/marqspnosa/shopwise/internal/tokens"
)

type UserFinder interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type Guard struct {
	Tokens *tokens.Service
	Users  UserFinder
}

func NewGuard(ts *tokens.Service, users UserFinder) *Guard {
	return &Guard{Tokens: ts, Users: users}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(h http.Header) (string, bool) {
	scheme, token, ok := strings.Cut(h.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (g *Guard) Authenticate(ctx context.Context, h http.Header) (*models.User, error) {
	raw, ok := BearerToken(h)
	if !ok {
		return nil, deny("missing_credentials", domain.Unauthenticated("Missing credentials"))
	}

	claims, err := g.Tokens.Decode(raw)
	if err != nil {
		return nil, deny("invalid_token", domain.Unauthenticated("Invalid token"))
	}

	if claims.UserID == "" {
		return nil, deny("invalid_payload", domain.Unauthenticated("Invalid token payload"))
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, deny("invalid_payload", domain.Unauthenticated("Invalid token payload"))
	}

	user, err := g.Users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, deny("unknown_user", domain.Unauthenticated("User not found"))
		}
		return nil, err
	}
	return user, nil
}

func AuthorizeAdmin(user *models.User) (*models.User, error) {
	if user == nil || !user.Role.IsAdmin() {
		return nil, deny("admin", domain.Forbidden("Admin only"))
	}
	return user, nil
}

// AuthorizeOwnerOrAdmin passes admins and the owner named by ownerID. A nil
// ownerID can only be satisfied by an admin.
func AuthorizeOwnerOrAdmin(user *models.User, ownerID *uuid.UUID) (*models.User, error) {
	if user == nil {
		return nil, deny("owner_or_admin", domain.Forbidden("Forbidden"))
	}
	if user.Role.IsAdmin() {
		return user, nil
	}
	if ownerID != nil && *ownerID == user.ID {
		return user, nil
	}
	return nil, deny("owner_or_admin", domain.Forbidden("Forbidden"))
}

func deny(rule string, err *domain.Error) error {
	metrics.AccessDenied.WithLabelValues(rule).Inc()
	return err
}
