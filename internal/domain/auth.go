package domain

import "time"

// Principal is the authenticated identity derived from a valid session token.
type Principal struct {
	Subject string
}

// SessionToken is a signed, stateless credential issued at login.
type SessionToken struct {
	Value     string
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
