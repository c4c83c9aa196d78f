package session

// User is the authenticated identity as the API reports it.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	FullName  string
	Avatar    string
}

// profilePayload mirrors the profile object in API responses. Avatar may be
// JSON null.
type profilePayload struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Avatar    *string `json:"avatar"`
}

// userPayload mirrors the user object in API responses.
type userPayload struct {
	ID      string         `json:"id"`
	Email   string         `json:"email"`
	Profile profilePayload `json:"profile"`
}

func (p userPayload) toUser() User {
	u := User{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.Profile.FirstName,
		LastName:  p.Profile.LastName,
		FullName:  p.Profile.FullName,
	}
	if p.Profile.Avatar != nil {
		u.Avatar = *p.Profile.Avatar
	}
	return u
}

// authPayload is the sign-in and sign-up response shape: the identity plus
// both tokens.
type authPayload struct {
	User         userPayload `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}
