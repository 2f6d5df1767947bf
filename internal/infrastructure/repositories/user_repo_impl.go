package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitpulse.backend/internal/domain/entities"
	domainerrors "fitpulse.backend/internal/domain/errors"
	"fitpulse.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations on top of gorm
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A unique-constraint rejection by the store maps
// back to ErrPhoneTaken / ErrNicknameTaken, covering the window between the
// usecase's pre-checks and the insert.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	m := &models.User{
		ID:           user.ID,
		PhoneNumber:  user.PhoneNumber,
		Nickname:     user.Nickname,
		Gender:       string(user.Gender),
		Age:          user.Age,
		Weight:       user.Weight,
		Height:       user.Height,
		PasswordHash: user.PasswordHash,
		Level:        user.Level.StorageValue(),
		IsActive:     user.IsActive,
		IsVerified:   user.IsVerified,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m)
}

// GetByPhoneNumber gets a user by phone number
func (r *UserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m)
}

// NicknameTaken reports whether another user already owns the nickname.
// excludeID, when not Nil, leaves that user out of the check.
func (r *UserRepository) NicknameTaken(ctx context.Context, nickname string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("nickname = ?", nickname)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies only the fields present in the patch and refreshes
// updated_at. Returns ErrNotFound when the user does not exist.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch entities.UserPatch) (*entities.User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Nickname.Valid {
		updates["nickname"] = patch.Nickname.String
	}
	if patch.Age.Valid {
		updates["age"] = patch.Age.Int
	}
	if patch.Weight.Valid {
		updates["weight"] = patch.Weight.Float64
	}
	if patch.Height.Valid {
		updates["height"] = patch.Height.Float64
	}
	if patch.Level.Valid {
		updates["level"] = entities.Level(patch.Level.String).StorageValue()
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, mapUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func toEntity(m *models.User) (*entities.User, error) {
	level, err := entities.LevelFromStorage(m.Level)
	if err != nil {
		return nil, err
	}
	return &entities.User{
		ID:           m.ID,
		PhoneNumber:  m.PhoneNumber,
		Nickname:     m.Nickname,
		Gender:       entities.Gender(m.Gender),
		Age:          m.Age,
		Weight:       m.Weight,
		Height:       m.Height,
		PasswordHash: m.PasswordHash,
		Level:        level,
		IsActive:     m.IsActive,
		IsVerified:   m.IsVerified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// mapUniqueViolation translates driver-level unique-constraint errors into
// domain errors. Postgres names the violated constraint; sqlite names the
// column. Anything else passes through untouched.
func mapUniqueViolation(err error) error {
	msg := err.Error()
	duplicate := errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
	if !duplicate {
		return err
	}
	if strings.Contains(msg, "phone_number") {
		return domainerrors.ErrPhoneTaken
	}
	if strings.Contains(msg, "nickname") {
		return domainerrors.ErrNicknameTaken
	}
	return err
}
