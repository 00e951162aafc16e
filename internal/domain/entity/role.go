// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleFarmer indicates a smallholder or commercial farmer account.
	RoleFarmer Role = "farmer"
	// RoleExtensionOfficer indicates an agricultural extension officer account.
	RoleExtensionOfficer Role = "extension_officer"
	// RoleAgriDealer indicates an agricultural input dealer account.
	RoleAgriDealer Role = "agri_dealer"
	// RoleAgriCompany indicates an agribusiness company account.
	RoleAgriCompany Role = "agri_company"
	// RoleAdmin indicates a platform administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleExtensionOfficer, RoleAgriDealer, RoleAgriCompany, RoleAdmin:
		return true
	default:
		return false
	}
}

// RegisterableRoles are the roles a user may pick at self-registration.
// Admin accounts are provisioned out of band.
var RegisterableRoles = Roles{RoleFarmer, RoleExtensionOfficer, RoleAgriDealer, RoleAgriCompany}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
