package nav

import "strings"

// Role is one of the closed set of console roles. Role claims arrive as
// free-form strings from the identity provider; ParseRole normalizes them
// so that comparison never depends on raw string equality.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSuperAdmin    Role = "super_admin"
	RoleDoctor        Role = "doctor"
	RoleNurse         Role = "nurse"
	RoleReceptionist  Role = "receptionist"
	RolePharmacist    Role = "pharmacist"
	RoleLabTechnician Role = "lab_technician"
	RoleAccountant    Role = "accountant"
	RolePatient       Role = "patient"

	// RoleUnknown marks a role claim outside the closed set. Unknown roles
	// are never an error: they fall through to the generic dashboard.
	RoleUnknown Role = ""
)

var knownRoles = map[Role]bool{
	RoleAdmin:         true,
	RoleSuperAdmin:    true,
	RoleDoctor:        true,
	RoleNurse:         true,
	RoleReceptionist:  true,
	RolePharmacist:    true,
	RoleLabTechnician: true,
	RoleAccountant:    true,
	RolePatient:       true,
}

// ParseRole normalizes a raw role claim into the closed set. Any value the
// set does not contain, including the empty string, parses to RoleUnknown.
func ParseRole(raw string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if knownRoles[r] {
		return r
	}
	return RoleUnknown
}

// Known reports whether r is a member of the closed role set.
func (r Role) Known() bool {
	return knownRoles[r]
}

// Roles returns the closed role set in stable order.
func Roles() []Role {
	return []Role{
		RoleAdmin,
		RoleSuperAdmin,
		RoleDoctor,
		RoleNurse,
		RoleReceptionist,
		RolePharmacist,
		RoleLabTechnician,
		RoleAccountant,
		RolePatient,
	}
}
