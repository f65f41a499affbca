package notification

import "errors"

var (
	// ErrUnknownParticipant signals that the sender or recipient ID did not
	// resolve to an existing user. Nothing was written.
	ErrUnknownParticipant = errors.New("sender or recipient does not exist")

	// ErrPersistence signals that the store rejected the write. The whole
	// create call is safe to retry.
	ErrPersistence = errors.New("failed to persist notification")
)
