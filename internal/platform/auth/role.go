package auth

import (
	"errors"
	"fmt"
)

// Role is one of the closed set of role names a principal can carry.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown role")

var knownRoles = map[string]Role{
	string(RoleUser):  RoleUser,
	string(RoleAdmin): RoleAdmin,
}

// ParseRole matches s exactly (case-sensitive) against the known role names.
func ParseRole(s string) (Role, error) {
	r, ok := knownRoles[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }
