package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/modamall/backoffice/internal/shared"
)

// Service verifies credentials and manages sessions.
type Service struct {
	repo     Repository
	sessions *shared.SessionManager
}

// NewService creates a new service.
func NewService(repo Repository, sessions *shared.SessionManager) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Login checks username/password and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, shared.Identity, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", shared.Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", shared.Identity{}, ErrInvalidCredentials
	}

	id := shared.Identity{
		AccountID:        account.ID,
		PermissionTypeID: account.PermissionTypeID,
		Username:         account.Username,
	}

	token, err := s.sessions.Issue(ctx, id)
	if err != nil {
		return "", shared.Identity{}, fmt.Errorf("issue session: %w", err)
	}
	return token, id, nil
}

// Logout destroys the session for token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
