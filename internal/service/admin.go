package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

// AdminService covers the admin panel and the read-only dashboard panels.
type AdminService interface {
	TriggerRetrain(ctx context.Context, creds apiclient.Credentials, username string) (string, error)
	LoadAdminStats(ctx context.Context, creds apiclient.Credentials) (*models.AdminStats, error)
	LoadDisputeList(ctx context.Context, creds apiclient.Credentials) ([]models.Dispute, error)
	LoadUserList(ctx context.Context, creds apiclient.Credentials) ([]models.UserRecord, error)
	LoadLiveNews(ctx context.Context, creds apiclient.Credentials) ([]models.LiveArticle, error)
	LoadUserHistory(ctx context.Context, creds apiclient.Credentials) ([]models.HistoryEntry, error)
	LoadPublicHistory(ctx context.Context) (*models.PublicHistory, error)
}

type adminService struct {
	backend  Backend
	notifier Notifier
	logger   *zap.Logger
}

func NewAdminService(backend Backend, notifier Notifier, logger *zap.Logger) AdminService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &adminService{backend: backend, notifier: notifier, logger: logger}
}

func (s *adminService) TriggerRetrain(ctx context.Context, creds apiclient.Credentials, username string) (string, error) {
	msg, err := s.backend.Retrain(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("retrain: %w", err)
	}
	s.logger.Info("Retrain triggered", zap.String("username", username))
	if err := s.notifier.RetrainTriggered(ctx, username); err != nil {
		s.logger.Warn("Failed to notify admins of retrain", zap.Error(err))
	}
	return msg, nil
}

func (s *adminService) LoadAdminStats(ctx context.Context, creds apiclient.Credentials) (*models.AdminStats, error) {
	stats, err := s.backend.AdminStats(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return stats, nil
}

func (s *adminService) LoadDisputeList(ctx context.Context, creds apiclient.Credentials) ([]models.Dispute, error) {
	d, err := s.backend.AdminDisputes(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("dispute list: %w", err)
	}
	return d, nil
}

func (s *adminService) LoadUserList(ctx context.Context, creds apiclient.Credentials) ([]models.UserRecord, error) {
	u, err := s.backend.AdminUsers(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("user list: %w", err)
	}
	return u, nil
}

func (s *adminService) LoadLiveNews(ctx context.Context, creds apiclient.Credentials) ([]models.LiveArticle, error) {
	a, err := s.backend.LiveNews(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("live news: %w", err)
	}
	return a, nil
}

func (s *adminService) LoadUserHistory(ctx context.Context, creds apiclient.Credentials) ([]models.HistoryEntry, error) {
	h, err := s.backend.UserHistory(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("user history: %w", err)
	}
	return h, nil
}

func (s *adminService) LoadPublicHistory(ctx context.Context) (*models.PublicHistory, error) {
	h, err := s.backend.PublicHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("public history: %w", err)
	}
	return h, nil
}
