package auth

// Identity is the current-user identity used to attribute mutations.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AnonymousName is the attribution used when no session identity exists.
const AnonymousName = "Anonymous"

// AttributionName returns the name to stamp on records.
func (i Identity) AttributionName() string {
	if i.Name == "" {
		return AnonymousName
	}
	return i.Name
}

// Session is an authenticated session handed back to the caller. The token
// is opaque; the core never verifies it.
type Session struct {
	Token string   `json:"access_token"`
	User  Identity `json:"user"`
}
