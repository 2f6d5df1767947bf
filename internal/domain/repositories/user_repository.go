package repositories

import (
	"context"

	"github.com/google/uuid"

	"fitpulse.backend/internal/domain/entities"
)

// UserRepository defines user data operations. The backing store enforces
// phone number and nickname uniqueness as hard constraints; Create and Update
// surface constraint violations as ErrPhoneTaken / ErrNicknameTaken so the
// pre-insert checks stay race-safe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.User, error)
	NicknameTaken(ctx context.Context, nickname string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.UserPatch) (*entities.User, error)
}
