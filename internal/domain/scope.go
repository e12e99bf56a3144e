package domain

import "strings"

const (
	RoleSE        = "se"
	RoleSEManager = "se_manager"
	RoleAdmin     = "admin"
)

// Identity is the authenticated requester, set by the auth middleware.
type Identity struct {
	UserID string
	Role   string
}

// EffectiveSEFilter derives the SE visibility filter for a request.
// SEs are always pinned to their own id; the requested value cannot widen
// their scope. Managers and admins may filter by any SE, or see everything
// when requested is empty. An unrecognized role is an error, never a default.
func EffectiveSEFilter(id Identity, requested string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(id.Role)) {
	case RoleSE:
		return id.UserID, nil
	case RoleSEManager, RoleAdmin:
		return strings.TrimSpace(requested), nil
	default:
		return "", InvalidRoleError{Role: id.Role}
	}
}
