// Package users holds the identity model and the credential-verification
// service: registration with hashed passwords, login with token issuance,
// and identity resolution for the request gate.
package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/server/auth"
)

const bcryptCost = 12

// Service provides authentication-related operations:
// - Register: create users with a salted one-way password hash
// - Login: verify credentials and mint a token
// - GetByUsername: resolve a validated token subject back to an identity
type Service struct {
	repo   Repository
	tokens *auth.Service
}

func NewService(repo Repository, tokens *auth.Service) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a new user. The raw password is bcrypt-hashed and never
// stored. A taken username yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (*User, error) {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{Username: username, Email: email, PasswordHash: string(hash)}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// The unique constraint closes the race between the exists check
		// and the insert.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

// Login verifies the username/password pair and returns a signed token.
// Unknown user and wrong password collapse into the same
// common.ErrInvalidCredentials so the response cannot be used to probe for
// accounts. Hash comparison is delegated to bcrypt's constant-time verify.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// GetByUsername resolves a token subject to the full identity record.
// A cryptographically valid token can still reference a since-deleted user;
// that case surfaces as common.ErrorNotFound.
func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

func (s *Service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}
