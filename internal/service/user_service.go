package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"users-service/internal/auth"
	"users-service/internal/domain"
	"users-service/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrUserNotFound is returned when a lookup does not match any user.
	ErrUserNotFound = errors.New("user not found")
)

// UserService describes user lifecycle and authentication operations.
type UserService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
	codec *auth.Codec
}

func NewUserService(users repository.UserRepository, codec *auth.Codec) UserService {
	return &userService{
		users: users,
		codec: codec,
	}
}

func (s *userService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if firstName == "" {
		return nil, errors.New("first name is required")
	}
	if lastName == "" {
		return nil, errors.New("last name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		PublicID:     uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

// Login verifies the submitted credentials and, on success, mints a bearer
// token for the user's public id. Nothing is mutated on failure or success.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.PublicID, time.Now())
	if err != nil {
		return nil, "", err
	}

	return sanitizeUser(user), token, nil
}

func (s *userService) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	user, err := s.users.GetByPublicID(ctx, publicID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) List(ctx context.Context, page, limit int) ([]domain.User, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 25
	}

	users, err := s.users.List(ctx, page*limit, limit)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		PublicID:  user.PublicID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
