package models

import "time"

// User is the view of a platform user this service reads. User records are
// owned by the user-management service; chime never writes them.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	AvatarURL string    `json:"avatarUrl" bson:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
