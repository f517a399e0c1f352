package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
)

const minPasswordLength = 8

var (
	// ErrInvalidUserInput is returned for an empty username or a short password.
	ErrInvalidUserInput = errors.New("username is required and password must be at least 8 characters")
	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService manages operator accounts. Passwords are stored as bcrypt hashes.
type UserService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type userServiceImpl struct {
	repo repository.UserRepository
	cost int
}

// NewUserService creates a UserService using bcrypt's default cost.
func NewUserService(repo repository.UserRepository) UserService {
	return &userServiceImpl{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *userServiceImpl) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < minPasswordLength {
		return nil, ErrInvalidUserInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: username, PasswordHash: string(hash)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
