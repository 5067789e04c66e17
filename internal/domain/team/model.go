package team

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Role represents a member's role in the team
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleMember  Role = "Member"
	RoleViewer  Role = "Viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember, RoleViewer:
		return true
	}
	return false
}

// BootstrapMemberID identifies the roster entry seeded from the session
// user. It cannot be removed.
const BootstrapMemberID = "1"

// Member is a team roster entry. JSON field names follow the historical
// serialized layout.
type Member struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	Avatar          string    `json:"avatar"`
	JoinedDate      time.Time `json:"joinedDate"`
	TasksCompleted  int       `json:"tasksCompleted"`
	TasksInProgress int       `json:"tasksInProgress"`
}

// avatarFor derives the single-letter avatar shown in the roster.
func avatarFor(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
