package auth

import "github.com/openblog/blog-api/internal/core/domain"

// Action classifies an operation for policy decisions.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionWrite:
		return "write"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Resource identifies the kind of resource a decision is about.
type Resource int

const (
	ResourceUser Resource = iota
	ResourcePost
	ResourceComment
)

func (r Resource) String() string {
	switch r {
	case ResourceUser:
		return "user"
	case ResourcePost:
		return "post"
	case ResourceComment:
		return "comment"
	default:
		return "unknown"
	}
}

// CanAct is the single authorization decision point, shared by every
// resource type. It is pure: no lookups, no side effects.
//
// owner is the username owning the target resource; it is empty for
// operations without a single owner (listing, creating on behalf of nobody).
// Ownership is evaluated before role, and either one granting access is
// sufficient.
//
// Rules:
//   - anonymous principals may only read posts and comments
//   - a principal always has full access to its own resources
//   - Admin has full access to everything
//   - Moderator may act on others' posts and comments but not administer users
//   - everything else is denied
func CanAct(p Principal, action Action, resource Resource, owner string) bool {
	if p.Anonymous() {
		return action == ActionRead && resource != ResourceUser
	}
	if owner != "" && p.Username == owner {
		return true
	}
	switch p.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleModerator:
		return resource != ResourceUser
	case domain.RoleUser:
		return action == ActionRead && resource != ResourceUser
	default:
		// Unrecognized role: deny rather than fall through.
		return false
	}
}
