package notification

import (
	"context"

	"chime/models"
)

// NotificationService defines the notification pipeline: validate the
// participants, persist the record, then best-effort push it to the
// recipient's live channels.
type NotificationService interface {
	// Create records a notification from sender to recipient. Failures come
	// back as error values: ErrUnknownParticipant when either ID does not
	// resolve, ErrPersistence when the store rejects the write. A recipient
	// with no live channels is not a failure; only persistence is
	// authoritative.
	Create(ctx context.Context, senderID, recipientID, content string) (*models.Notification, error)
	// History returns every notification addressed to userID, timestamp
	// ascending, each annotated with the sender's current avatar.
	History(ctx context.Context, userID string) ([]models.NotificationView, error)
}
