package notificationRepo

import "chime/models"

// NotificationRepository defines persistence for notification records.
type NotificationRepository interface {
	// Create inserts a new notification record. The repository assigns the
	// record's ID and Timestamp; the insert either fully commits or fails.
	Create(n *models.Notification) error
	// ListByRecipient retrieves every notification addressed to recipientID,
	// sorted by timestamp ascending.
	ListByRecipient(recipientID string) ([]models.Notification, error)
}
