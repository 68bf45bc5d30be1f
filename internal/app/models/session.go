package models

import "time"

// Session is the process-wide authenticated state. UserType and UserEmail are
// meaningful only while the session record exists; logout deletes the whole
// record rather than blanking fields.
type Session struct {
	SessionID string    `json:"session_id"`
	UserType  string    `json:"user_type"`
	UserEmail string    `json:"user_email"`
	ExpiresAt time.Time `json:"expires_at"`
}
