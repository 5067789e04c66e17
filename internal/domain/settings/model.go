package settings

// Notifications holds the per-channel notification toggles.
type Notifications struct {
	Email   bool `json:"email"`
	Browser bool `json:"browser"`
}

// Preferences is the persisted user-settings blob.
type Preferences struct {
	Notifications Notifications `json:"notifications"`
	Theme         string        `json:"theme,omitempty"`
}

// DefaultPreferences returns the preferences used before the user saves any.
func DefaultPreferences() Preferences {
	return Preferences{Notifications: Notifications{Email: true, Browser: true}}
}
