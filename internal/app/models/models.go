package models

// Role defines the user role type
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// SelfAssignable reports whether the role may be chosen through public
// registration. Admin roles are only created by the seed process or by
// another admin.
func (r Role) SelfAssignable() bool {
	return r == RoleStudent || r == RoleInstructor
}

// IsAdmin reports whether the role grants access to user management.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
