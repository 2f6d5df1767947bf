package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitpulse.backend/internal/domain/entities"
	domainerrors "fitpulse.backend/internal/domain/errors"
	"fitpulse.backend/internal/interfaces/http/middleware"
	"fitpulse.backend/internal/interfaces/http/response"
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	authService AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GetMe returns the authenticated user's profile
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		// a valid token for a user that no longer exists is not a
		// distinct signal
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.Unauthorized("Unauthorized"))
			return
		}
		handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateMe updates the authenticated user's profile
// PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// GetUser returns a user profile by id
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
