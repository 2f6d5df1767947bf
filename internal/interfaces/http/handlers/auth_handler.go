package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitpulse.backend/internal/domain/entities"
	domainerrors "fitpulse.backend/internal/domain/errors"
	"fitpulse.backend/internal/interfaces/http/response"
	"fitpulse.backend/pkg/logger"
)

// AuthService is the usecase surface the HTTP layer depends on
type AuthService interface {
	Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.TokenResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tokens)
}

// handleAuthError maps domain outcomes to HTTP responses. Expected outcomes
// are not logged; anything else is logged and rendered as a generic 500.
func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrPhoneTaken):
		response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodePhoneTaken, "Phone number is already registered", err))
	case errors.Is(err, domainerrors.ErrNicknameTaken):
		response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeNicknameTaken, "Nickname is already in use", err))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid phone number or password", err))
	case errors.Is(err, domainerrors.ErrAccountDisabled):
		response.Error(c, domainerrors.Forbidden("Account is disabled"))
	case errors.Is(err, domainerrors.ErrNotFound):
		response.Error(c, domainerrors.NotFound("User not found"))
	default:
		logger.Error(c.Request.Context(), "auth operation failed", zap.Error(err))
		response.Error(c, err)
	}
}
