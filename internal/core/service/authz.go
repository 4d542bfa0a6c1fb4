package service

import (
	"context"
	"errors"

	"github.com/openblog/blog-api/internal/api/metrics"
	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

// authorize runs the shared policy and converts a denial into the right
// rejection class: unauthenticated callers get ErrUnauthenticated, valid
// principals get ErrForbidden. Denials are counted, never defaulted to allow.
func authorize(p auth.Principal, action auth.Action, resource auth.Resource, owner string) error {
	if auth.CanAct(p, action, resource, owner) {
		return nil
	}
	metrics.AuthzDenialsTotal.WithLabelValues(resource.String(), action.String()).Inc()
	if p.Anonymous() {
		return domain.ErrUnauthenticated
	}
	return domain.ErrForbidden
}

// resolveOwner maps a stored owner ID to the account's current username, so
// ownership follows the account through renames. The denormalized author
// string on posts and comments is display data only; it must never decide
// access, or a freed username could be re-registered to hijack the original
// owner's content. A deleted account yields no owner and only role-based
// access remains.
func resolveOwner(ctx context.Context, users ports.UserRepository, ownerID string) (string, error) {
	owner, err := users.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return owner.Username, nil
}
