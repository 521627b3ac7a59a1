package response_models

// UserIdentity is what the session gate vouches for after verifying a token.
type UserIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Session struct {
	User        UserIdentity `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// DisplayName falls back to "User" the way the sign-in screen does.
func (u UserIdentity) DisplayName() string {
	if u.Name == "" {
		return "User"
	}
	return u.Name
}
