// Package operation
package operation

import "slices"

type Role string

const (
	RoleUser  Role = "USER"
	RolePilot Role = "PILOT"
	RoleAdmin Role = "ADMIN"
)

var allRoles = []Role{RoleUser, RolePilot, RoleAdmin}

func (role Role) Valid() bool {
	return slices.Contains(allRoles, role)
}

// AtLeast 角色等级比较, ADMIN > PILOT > USER
func (role Role) AtLeast(other Role) bool {
	return role.level() >= other.level()
}

func (role Role) level() int {
	switch role {
	case RoleAdmin:
		return 2
	case RolePilot:
		return 1
	default:
		return 0
	}
}
