package entity

// Role represents the kind of account signed in.
type Role string

const (
	// RoleUser indicates a shopper.
	RoleUser Role = "user"
	// RoleAdmin indicates a back-office operator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a backend role string, treating anything unknown as a shopper.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
