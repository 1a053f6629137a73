// Package api provides typed clients for the remote SPARCOM functions.
package api

// Actions understood by the remote functions.
const (
	// Auth function
	ActionRegister = "register"
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionMe       = "me"
	ActionUpdate   = "update"

	// Telegram auth function
	ActionCallback = "callback"

	// Events function
	ActionList = "list"

	// Roles function
	ActionApply = "apply"
)

// User roles.
const (
	RoleGuest     = "guest"
	RoleOrganizer = "organizer"
	RoleMaster    = "master"
	RoleBathowner = "bathowner"
)

// ValidRegistrationRole reports whether role may be chosen at registration.
// Bathowner is assigned through the role-application flow only.
func ValidRegistrationRole(role string) bool {
	switch role {
	case RoleGuest, RoleOrganizer, RoleMaster:
		return true
	}
	return false
}

// ValidApplicationRole reports whether role may be requested in a role application.
func ValidApplicationRole(role string) bool {
	return role == RoleOrganizer || role == RoleMaster
}
