package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rajankit27/FakeNewsDetection/internal/crypto"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

var ErrNoBrowserID = errors.New("browser id is required")

// Store persists one record per browser: the backend session and the UI preferences.
// Get on an unknown browser returns a zero Session and no error.
// Clear removes token, role and username in one backend operation and leaves
// preferences intact.
type Store interface {
	Get(ctx context.Context, browserID string) (models.Session, error)
	Set(ctx context.Context, browserID string, s models.Session) error
	Clear(ctx context.Context, browserID string) error
	Preferences(ctx context.Context, browserID string) (models.Preferences, error)
	SetPreferences(ctx context.Context, browserID string, p models.Preferences) error
	Close() error
}

// encryptedStore seals bearer tokens before they reach the backing store.
type encryptedStore struct {
	Store
	key []byte
}

// WithEncryption wraps a store so tokens are kept encrypted at rest.
func WithEncryption(inner Store, key []byte) Store {
	return &encryptedStore{Store: inner, key: key}
}

func (s *encryptedStore) Get(ctx context.Context, browserID string) (models.Session, error) {
	sess, err := s.Store.Get(ctx, browserID)
	if err != nil {
		return models.Session{}, err
	}
	token, err := crypto.Decrypt(sess.Token, s.key)
	if err != nil {
		// An unreadable token (rotated secret) is the same as no token.
		return models.Session{}, nil
	}
	sess.Token = token
	return sess, nil
}

func (s *encryptedStore) Set(ctx context.Context, browserID string, sess models.Session) error {
	sealed, err := crypto.Encrypt(sess.Token, s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}
	sess.Token = sealed
	return s.Store.Set(ctx, browserID, sess)
}

func checkID(browserID string) error {
	if browserID == "" {
		return ErrNoBrowserID
	}
	return nil
}
