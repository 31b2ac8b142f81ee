package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/quizhub/quizhub-backend/internal/validation"
	"github.com/rs/zerolog"
)

// UserService handles account registration, profiles and admin-side user
// management.
type UserService struct {
	userRepo *repository.UserRepository
	auth     *AuthService
	log      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, auth *AuthService, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates a player account. The registration form is validated
// against the shared UserSchema rule set, field by field, before hashing.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	form := validation.ValidateForm(map[string]any{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}, validation.UserSchema)
	if !form.IsValid() {
		return nil, &FormValidationFailedError{Result: form}
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Int("user_id", user.ID).Msg("User registered")
	return user, nil
}

// Authenticate verifies credentials and returns the account.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns a single account.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// List returns a page of accounts with the total count.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]model.User, int, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// Create adds an account with an explicit role (admin panel).
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	result := validation.ValidateUser(validation.UserRecord{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if !result.IsValid() {
		return nil, &ValidationFailedError{Result: result}
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update modifies an account. An empty request password keeps the stored
// hash; a non-empty one must pass the strength check.
func (s *UserService) Update(ctx context.Context, id int, req *model.UpdateUserRequest) (*model.User, error) {
	result := validation.ValidateUser(validation.UserRecord{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if !result.IsValid() {
		return nil, &ValidationFailedError{Result: result}
	}

	user := &model.User{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Password != "" {
		hash, err := s.auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes an account and its active session.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.auth.Logout(ctx, id); err != nil {
		s.log.Warn().Err(err).Int("user_id", id).Msg("Failed to clear session of deleted user")
	}
	return nil
}
