package model

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAuthenticated reports whether the scope carries a user.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}
