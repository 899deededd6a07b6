// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a person can log in as.
type Role string

const (
	// RolePatient indicates a clinic patient account.
	RolePatient Role = "patient"
	// RoleDoctor indicates a practitioner account.
	RoleDoctor Role = "doctor"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// redirectFallback is where clients land when the role carries no mapping.
const redirectFallback = "login"

// redirectTargets is the fixed role to post-login destination mapping.
var redirectTargets = map[Role]string{
	RolePatient: "patient-home",
	RoleDoctor:  "doctor-agenda",
	RoleAdmin:   "admin-dashboard",
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role belongs to the closed set.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	default:
		return false
	}
}

// RedirectTarget returns the destination a client should be routed to after
// logging in with this role. Roles outside the closed set fall back to the
// login page.
func (r Role) RedirectTarget() string {
	if target, ok := redirectTargets[r]; ok {
		return target
	}

	return redirectFallback
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
