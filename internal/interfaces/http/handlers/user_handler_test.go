package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fitpulse.backend/internal/domain/entities"
	domainerrors "fitpulse.backend/internal/domain/errors"
)

func newUserRouter(stub authServiceStub, userID uuid.UUID) *gin.Engine {
	r := gin.New()
	h := NewUserHandler(stub)
	r.GET("/api/v1/users/me", withUserID(userID), h.GetMe)
	r.PUT("/api/v1/users/me", withUserID(userID), h.UpdateMe)
	r.GET("/api/v1/users/:id", withUserID(userID), h.GetUser)
	return r
}

func TestUserHandler_GetMe(t *testing.T) {
	userID := uuid.New()
	r := newUserRouter(authServiceStub{
		getUserByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			assert.Equal(t, userID, id)
			return &entities.User{ID: id, Nickname: "runner1", PasswordHash: "secret-hash"}, nil
		},
	}, userID)

	w := performJSON(r, http.MethodGet, "/api/v1/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "runner1")
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestUserHandler_GetMe_UserGone(t *testing.T) {
	userID := uuid.New()
	r := newUserRouter(authServiceStub{
		getUserByIDFn: func(context.Context, uuid.UUID) (*entities.User, error) {
			return nil, domainerrors.ErrNotFound
		},
	}, userID)

	w := performJSON(r, http.MethodGet, "/api/v1/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_GetMe_NoIdentityInContext(t *testing.T) {
	r := gin.New()
	h := NewUserHandler(authServiceStub{})
	r.GET("/me", h.GetMe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_UpdateMe_Success(t *testing.T) {
	userID := uuid.New()
	r := newUserRouter(authServiceStub{
		updateProfileFn: func(_ context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
			assert.Equal(t, userID, id)
			assert.NotNil(t, input.Age)
			assert.Equal(t, 30, *input.Age)
			assert.Nil(t, input.Nickname)
			return &entities.User{ID: id, Age: 30}, nil
		},
	}, userID)

	w := performJSON(r, http.MethodPut, "/api/v1/users/me", gin.H{"age": 30})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"age":30`)
}

func TestUserHandler_UpdateMe_InvalidField(t *testing.T) {
	userID := uuid.New()
	r := newUserRouter(authServiceStub{
		updateProfileFn: func(context.Context, uuid.UUID, *entities.UpdateUserInput) (*entities.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}, userID)

	w := performJSON(r, http.MethodPut, "/api/v1/users/me", gin.H{"age": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateMe_NicknameTaken(t *testing.T) {
	userID := uuid.New()
	r := newUserRouter(authServiceStub{
		updateProfileFn: func(context.Context, uuid.UUID, *entities.UpdateUserInput) (*entities.User, error) {
			return nil, domainerrors.ErrNicknameTaken
		},
	}, userID)

	w := performJSON(r, http.MethodPut, "/api/v1/users/me", gin.H{"nickname": "runner2"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeNicknameTaken)
}

func TestUserHandler_UpdateMe_NotFound(t *testing.T) {
	userID := uuid.New()
	r := newUserRouter(authServiceStub{
		updateProfileFn: func(context.Context, uuid.UUID, *entities.UpdateUserInput) (*entities.User, error) {
			return nil, domainerrors.ErrNotFound
		},
	}, userID)

	w := performJSON(r, http.MethodPut, "/api/v1/users/me", gin.H{"age": 30})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_GetUser(t *testing.T) {
	userID := uuid.New()
	target := uuid.New()
	r := newUserRouter(authServiceStub{
		getUserByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			if id == target {
				return &entities.User{ID: id, Nickname: "other"}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}, userID)

	w := performJSON(r, http.MethodGet, "/api/v1/users/"+target.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "other")

	w = performJSON(r, http.MethodGet, "/api/v1/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(r, http.MethodGet, "/api/v1/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
