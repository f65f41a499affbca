package userRepo

import (
	"chime/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines read-only access to user records. Users are owned by
// the user-management service; this repository is used for existence and
// display-name checks plus live avatar resolution, never for authorization.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when no
	// such user exists.
	GetByID(id string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetAvatars resolves the current avatar URL for each of the given user
	// IDs. IDs with no matching user are simply absent from the result.
	GetAvatars(ids []string) (map[string]string, error)
}
