package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/main18/Developers-Social-Network/app/auth"
	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/repositories"
	"github.com/main18/Developers-Social-Network/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[int]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[int]*models.User),
	}
}

func (s *stubUserRepo) Create(user *models.User) error {
	if _, exists := s.byEmail[strings.ToLower(user.Email)]; exists {
		return repositories.ErrDuplicateEmail
	}
	user.ID = len(s.byID) + 1
	s.byEmail[strings.ToLower(user.Email)] = user
	s.byID[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := s.byID[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	user, exists := s.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func newTestControllers(t *testing.T) (*UserController, *AuthController) {
	t.Helper()
	tokens := auth.NewTokenService("test-secret", 10*time.Minute)
	userService := services.NewUserService(newStubUserRepo(), tokens, bcrypt.MinCost)
	return NewUserController(userService), NewAuthController(userService)
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterInvalidJSON(t *testing.T) {
	uc, _ := newTestControllers(t)

	rec := postJSON(uc.Register, "/api/users", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidationShape(t *testing.T) {
	uc, _ := newTestControllers(t)

	rec := postJSON(uc.Register, "/api/users", `{"name":"","email":"bad","password":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errors"`)
	assert.Contains(t, rec.Body.String(), "Name is required")
}

func TestRegisterReturnsToken(t *testing.T) {
	uc, _ := newTestControllers(t)

	rec := postJSON(uc.Register, "/api/users", `{"name":"Alice","email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}

func TestLoginInvalidCredentialsIdenticalBodies(t *testing.T) {
	uc, ac := newTestControllers(t)

	rec := postJSON(uc.Register, "/api/users", `{"name":"Alice","email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	wrongPassword := postJSON(ac.Login, "/api/auth", `{"email":"a@x.com","password":"nope123"}`)
	unknownEmail := postJSON(ac.Login, "/api/auth", `{"email":"b@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
}
