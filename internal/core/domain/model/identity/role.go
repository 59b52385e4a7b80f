package identity

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is an identity's registered marketplace role. The set is closed: an
// identity is either a client or a freelancer. The role is informational for
// the order core: authorization there is decided by the identity's
// relationship to an order (buyer/seller), not by this value. It shapes
// which side of the marketplace the identity presents.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient registers the identity as a buyer of services.
	RoleClient

	// RoleFreelancer registers the identity as a seller of services.
	RoleFreelancer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "Unknown",
		RoleClient:     "Client",
		RoleFreelancer: "Freelancer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleClient:     "Client",
		RoleFreelancer: "Freelancer",
	}
}

// RoleFromString parses a role from its string representation.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
