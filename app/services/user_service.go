package services

import (
	"errors"
	"fmt"

	"github.com/main18/Developers-Social-Network/app/auth"
	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login, and profile lookup.
type UserService struct {
	users      repositories.UserRepository
	tokens     *auth.TokenService
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(users repositories.UserRepository, tokens *auth.TokenService, bcryptCost int) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user with a hashed password and a gravatar-derived
// avatar, then issues a token for the new account. Registering an email that
// already exists fails with ErrUserExists.
func (s *UserService) Register(name, email, password string) (string, error) {
	if _, err := s.users.GetByEmail(email); err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("failed to check user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Avatar:   models.GravatarURL(email),
	}
	user.BeforeCreate()

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return "", ErrUserExists
		}
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password both return ErrInvalidCredentials.
func (s *UserService) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// GetProfile returns the user for an authenticated id.
func (s *UserService) GetProfile(userID int) (*models.User, error) {
	return s.users.GetByID(userID)
}
