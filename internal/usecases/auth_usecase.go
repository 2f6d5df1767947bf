package usecases

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"fitpulse.backend/internal/domain/entities"
	domainerrors "fitpulse.backend/internal/domain/errors"
	"fitpulse.backend/internal/domain/repositories"
	"fitpulse.backend/pkg/crypto"
	"fitpulse.backend/pkg/jwt"
)

// AuthUsecase handles registration and authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	hasher     *crypto.Hasher
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, hasher *crypto.Hasher, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Register creates a new user. Duplicate checks run before the insert; the
// store's unique constraints close the race window between them.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	phone := entities.NormalizePhoneNumber(input.PhoneNumber)

	_, err := u.userRepo.GetByPhoneNumber(ctx, phone)
	if err == nil {
		return nil, domainerrors.ErrPhoneTaken
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	taken, err := u.userRepo.NicknameTaken(ctx, input.Nickname, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrNicknameTaken
	}

	passwordHash, err := u.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		PhoneNumber:  phone,
		Nickname:     input.Nickname,
		Gender:       input.Gender,
		Age:          input.Age,
		Weight:       round2(input.Weight),
		Height:       round2(input.Height),
		PasswordHash: passwordHash,
		Level:        input.Level,
		IsActive:     true,
		IsVerified:   false,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by phone number and password and returns a token
// pair. Unknown phone and wrong password produce the same error so callers
// cannot probe which accounts exist.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.TokenResponse, error) {
	phone := entities.NormalizePhoneNumber(input.PhoneNumber)

	user, err := u.userRepo.GetByPhoneNumber(ctx, phone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.hasher.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	return &entities.TokenResponse{
		AccessToken:  pair.AccessToken,
		TokenType:    "bearer",
		RefreshToken: pair.RefreshToken,
	}, nil
}

// GetUserByID resolves the user behind a verified token subject
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile update. A nickname change is
// re-validated against all other users; keeping the current nickname is not a
// collision.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	patch := input.Patch()
	if patch.Weight.Valid {
		patch.Weight.Float64 = round2(patch.Weight.Float64)
	}
	if patch.Height.Valid {
		patch.Height.Float64 = round2(patch.Height.Float64)
	}

	if patch.Nickname.Valid {
		taken, err := u.userRepo.NicknameTaken(ctx, patch.Nickname.String, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.ErrNicknameTaken
		}
	}

	return u.userRepo.Update(ctx, id, patch)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
