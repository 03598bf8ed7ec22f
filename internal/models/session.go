package models

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is what the backend issued at login. The token never leaves the server.
type Session struct {
	Token    string `json:"-"`
	Role     Role   `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
}

// Authenticated reports whether a token is present. Role and Username carry no
// meaning without one.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.Authenticated() && s.Role == RoleAdmin
}

// Preferences are the per-browser UI flags (setting_notify, setting_saver).
// They survive logout.
type Preferences struct {
	Notify bool `json:"setting_notify"`
	Saver  bool `json:"setting_saver"`
}

func DefaultPreferences() Preferences {
	return Preferences{Notify: true, Saver: false}
}

// BrowserClaims defines the structure of the signed browser cookie.
type BrowserClaims struct {
	BrowserID string `json:"bid"`
	jwt.RegisteredClaims
}
