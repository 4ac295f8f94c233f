// Package domain contains the shared entities of the marketplace.
package domain

import "encoding/json"

// Role is a string tag on a user record gating access to admin-only operations.
type Role string

// Roles assigned by the application.
const (
	RoleUnset Role = ""
	RoleBuyer Role = "buyers"
	RoleAdmin Role = "admin"

	// RoleUser is checked by the account-status endpoint but no write
	// path ever assigns it. Kept for API compatibility.
	RoleUser Role = "user"
)

// User is a profile record created on first sign-in. Identity itself lives
// with the external auth provider; we only keep the email, the role, and
// whatever else the client sent at registration time.
type User struct {
	ID    string
	Email string
	Role  Role
	Extra map[string]any
}

// MarshalJSON flattens Extra into the object so user records round-trip
// the same way the client submitted them.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+3)
	for k, v := range u.Extra {
		out[k] = v
	}
	if u.ID != "" {
		out["id"] = u.ID
	}
	if u.Email != "" {
		out["email"] = u.Email
	}
	if u.Role != RoleUnset {
		out["role"] = string(u.Role)
	}
	return json.Marshal(out)
}

// UnmarshalJSON picks the known fields out of the object and keeps the
// remaining ones in Extra.
func (u *User) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	u.ID = popString(m, "id")
	u.Email = popString(m, "email")
	u.Role = Role(popString(m, "role"))
	u.Extra = remaining(m)
	return nil
}
