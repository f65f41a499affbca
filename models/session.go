package models

import "time"

// WebSession is the server-side session blob the identity service writes to
// Redis once a login (including its OTP step) has fully completed. chime only
// ever reads these: a request is authenticated iff its cookie resolves to a
// session with Status == SessionStatusComplete.
type WebSession struct {
	UserID        string    `json:"userId"`
	Status        string    `json:"status"` // "pending", "otp_verified", "complete"
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

const SessionStatusComplete = "complete"
