// Package rolegate decides page-level access for an authenticated role. The
// API middleware enforces the same policy per route; this is the shared
// decision table.
package rolegate

import "github.com/aydinsoft/backoffice-backend/pkg/enums"

// Decision is the outcome for a navigation attempt.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login page.
	RedirectLogin
	// RedirectDefault sends an under-privileged user to the default page.
	RedirectDefault
)

// LoginPath is always reachable.
const LoginPath = "/login"

// DefaultPath is where under-privileged users land.
const DefaultPath = "/products"

// supervisorPaths require a supervisor or admin role.
var supervisorPaths = map[string]struct{}{
	"/dashboard":  {},
	"/accounting": {},
	"/gecmis":     {},
}

// User is the authenticated identity a decision is made for. A nil user is
// an unauthenticated visitor.
type User struct {
	Role enums.Role
}

// Decide returns the navigation outcome for the path.
func Decide(path string, user *User) Decision {
	if path == LoginPath {
		return Allow
	}
	if user == nil {
		return RedirectLogin
	}

	role := user.Role
	if !role.IsValid() {
		role = enums.RoleStaff
	}

	if _, restricted := supervisorPaths[path]; restricted && !role.SupervisorPlus() {
		return RedirectDefault
	}
	return Allow
}
