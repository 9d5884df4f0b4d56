package model

// User mirrors the server-side profile record. It is immutable from the
// client's perspective except through an explicit profile update call.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Currency  string `json:"currency"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// AuthPayload is the data field of a successful login or register response.
// ExpiresAt is kept as the server-supplied string; the client never
// interprets it, expiry is enforced server-side via 401.
type AuthPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    string `json:"expiresAt"`
	User         User   `json:"user"`
}
