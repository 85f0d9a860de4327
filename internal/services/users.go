package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/collabhq/roster/internal/auth"
	"github.com/collabhq/roster/internal/models"
	"github.com/collabhq/roster/internal/store"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

const weakPasswordMessage = "Password must be at least 8 characters and include lowercase, uppercase, number, and special character"

// UserService orchestrates signup and login: password policy, hashing,
// persistence, and token issuance.
type UserService struct {
	store  *store.Store
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewUserService(st *store.Store, hasher *auth.Hasher, tokens *auth.TokenService) *UserService {
	return &UserService{
		store:  st,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup registers a new account and returns it with a freshly issued token.
// Duplicate emails surface as DuplicateKeyError from the store's uniqueness
// constraint; weak passwords as ValidationError.
func (s *UserService) Signup(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error) {
	if !auth.StrongPassword(password) {
		return nil, "", srvErrors.NewValidationError(weakPasswordMessage)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and returns the user with a new token.
// Unknown email and wrong password collapse into the same
// InvalidCredentialsError so responses cannot distinguish them.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return nil, "", srvErrors.NewInvalidCredentialsError()
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", srvErrors.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}
