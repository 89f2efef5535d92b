package model

import "time"

// Session is the credential issued by the identity provider. The dashboard
// never mints tokens itself; it only stores and forwards them.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time

	UserID string
	Email  string
}

func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

// Principal is the authenticated identity as confirmed by the core API.
type Principal struct {
	UserID      string
	Email       string
	IsModerator bool
}
