package models

// User is the profile returned alongside a login token.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	HouseNumber string `json:"house_number,omitempty"`
	Role        string `json:"role"`
}

// LoginRequest is posted to the API login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse accepts both "token" and "access_token" spellings.
type LoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	User        *User  `json:"user"`
}

// SessionToken returns whichever token field the API filled.
func (r LoginResponse) SessionToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// SessionRole prefers the top-level role, then the user's role.
func (r LoginResponse) SessionRole() Role {
	if role := ParseRole(r.Role); role != "" {
		return role
	}
	if r.User != nil {
		return ParseRole(r.User.Role)
	}
	return ""
}
