package models

import "time"

// Notification is one user notifying another. Records are immutable once
// written: there is no edit or delete path anywhere in the service.
//
// SenderName and RecipientName are copied from the user records at creation
// time, so a later rename never rewrites history. Avatars are the opposite:
// they are mutable, so they are resolved live on the read path (see
// NotificationView) instead of being stored here.
type Notification struct {
	ID            string    `json:"id" bson:"id"`
	SenderID      string    `json:"senderId" bson:"senderId"`
	RecipientID   string    `json:"recipientId" bson:"recipientId"`
	SenderName    string    `json:"senderName" bson:"senderName"`
	RecipientName string    `json:"recipientName" bson:"recipientName"`
	Content       string    `json:"content" bson:"content"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
}

// NotificationView is a history item as returned to clients: the stored
// record plus the sender's current avatar.
type NotificationView struct {
	Notification `bson:",inline"`

	SenderAvatarURL string `json:"senderAvatarUrl" bson:"-"`
}
