package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
	"github.com/Rajankit27/FakeNewsDetection/internal/session"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, browserID, username, password string) (models.Session, error)
	Logout(ctx context.Context, browserID string) error
}

type authService struct {
	backend Backend
	store   session.Store
	logger  *zap.Logger
}

func NewAuthService(backend Backend, store session.Store, logger *zap.Logger) AuthService {
	return &authService{backend: backend, store: store, logger: logger}
}

func (s *authService) Register(ctx context.Context, username, password string) (string, error) {
	msg, err := s.backend.Register(ctx, username, password)
	if err != nil {
		s.logger.Warn("Registration failed", zap.String("username", username), zap.Error(err))
		return "", err
	}
	s.logger.Info("User registered", zap.String("username", username))
	return msg, nil
}

// Login exchanges credentials for a token and stores it for the browser.
func (s *authService) Login(ctx context.Context, browserID, username, password string) (models.Session, error) {
	resp, err := s.backend.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", zap.String("username", username), zap.Error(err))
		return models.Session{}, err
	}

	sess := models.Session{Token: resp.Token, Role: resp.Role, Username: resp.Username}
	if sess.Role == "" {
		sess.Role = models.RoleUser
	}
	if sess.Username == "" {
		sess.Username = username
	}
	if err := s.store.Set(ctx, browserID, sess); err != nil {
		return models.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("User logged in", zap.String("username", sess.Username), zap.String("role", string(sess.Role)))
	return sess, nil
}

// Logout drops the session. Preferences stay with the browser.
func (s *authService) Logout(ctx context.Context, browserID string) error {
	if err := s.store.Clear(ctx, browserID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
