package notification

import (
	"context"
	"fmt"

	notificationRepo "chime/database/repository/notification"
	userRepo "chime/database/repository/user"
	"chime/models"
	"chime/services/realtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users  userRepo.UserRepository
	Repo   notificationRepo.NotificationRepository
	Hub    *realtime.Hub
	Logger *zap.Logger
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	repo notificationRepo.NotificationRepository,
	hub *realtime.Hub,
	logger *zap.Logger,
) (*DefaultNotificationService, error) {
	if users == nil || repo == nil || hub == nil {
		return nil, fmt.Errorf("notification service initialization error: missing dependency")
	}
	return &DefaultNotificationService{
		Users:  users,
		Repo:   repo,
		Hub:    hub,
		Logger: logger,
	}, nil
}

// Create validates both participants, persists the record, then pushes it to
// the recipient's live channels.
//
// The two participant lookups run concurrently; both must land before
// anything is written. The push only runs after the insert commits and is
// never allowed to fail the call: a recipient with zero channels simply
// discovers the notification on their next history fetch. The persisted
// record is never rolled back, even if the caller has gone away by the time
// the push happens.
func (s *DefaultNotificationService) Create(ctx context.Context, senderID, recipientID, content string) (*models.Notification, error) {
	var sender, recipient *models.User

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.Users.GetByID(senderID)
		if err != nil {
			return err
		}
		sender = u
		return nil
	})
	g.Go(func() error {
		u, err := s.Users.GetByID(recipientID)
		if err != nil {
			return err
		}
		recipient = u
		return nil
	})
	if err := g.Wait(); err != nil {
		s.Logger.Error("Create: participant lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if sender == nil || recipient == nil {
		return nil, ErrUnknownParticipant
	}

	// Names are captured here, once, so later renames never rewrite history.
	notif := &models.Notification{
		SenderID:      senderID,
		RecipientID:   recipientID,
		SenderName:    sender.Name,
		RecipientName: recipient.Name,
		Content:       content,
	}
	if err := s.Repo.Create(notif); err != nil {
		s.Logger.Error("Create: failed to persist notification",
			zap.String("senderID", senderID),
			zap.String("recipientID", recipientID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	delivered := s.Hub.Push(recipientID, realtime.Event{
		Name:    realtime.EventNewNotification,
		Payload: *notif,
	})
	if delivered == 0 {
		s.Logger.Debug("Create: recipient has no live channels",
			zap.String("recipientID", recipientID),
			zap.String("notificationID", notif.ID))
	}

	return notif, nil
}

// History returns userID's notifications, timestamp ascending, with each
// sender's current avatar resolved live. Sender names stay as recorded at
// creation time.
func (s *DefaultNotificationService) History(ctx context.Context, userID string) ([]models.NotificationView, error) {
	notifs, err := s.Repo.ListByRecipient(userID)
	if err != nil {
		s.Logger.Error("History: failed to list notifications",
			zap.String("userID", userID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	senderIDs := make([]string, 0, len(notifs))
	seen := make(map[string]bool, len(notifs))
	for _, n := range notifs {
		if !seen[n.SenderID] {
			seen[n.SenderID] = true
			senderIDs = append(senderIDs, n.SenderID)
		}
	}

	avatars, err := s.Users.GetAvatars(senderIDs)
	if err != nil {
		// Avatars are cosmetic; history still renders without them.
		s.Logger.Warn("History: failed to resolve sender avatars", zap.Error(err))
		avatars = map[string]string{}
	}

	views := make([]models.NotificationView, 0, len(notifs))
	for _, n := range notifs {
		views = append(views, models.NotificationView{
			Notification:    n,
			SenderAvatarURL: avatars[n.SenderID],
		})
	}
	return views, nil
}
