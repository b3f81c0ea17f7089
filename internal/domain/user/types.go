package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfService reports whether the role can be chosen at sign-up. Admins are seeded.
func (r Role) IsSelfService() bool {
	return r == RoleCustomer || r == RoleProvider
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
