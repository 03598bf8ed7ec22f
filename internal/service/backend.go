package service

import (
	"context"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

// Backend is the subset of *apiclient.Client the services depend on.
type Backend interface {
	Predict(ctx context.Context, creds apiclient.Credentials, text string) (*models.SingleVerdict, error)
	PredictFromQuery(ctx context.Context, creds apiclient.Credentials, query string) (*models.GlobalReport, error)
	PredictFromURL(ctx context.Context, creds apiclient.Credentials, target string) (*models.SingleVerdict, error)
	PublicHistory(ctx context.Context) (*models.PublicHistory, error)
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (*apiclient.LoginResponse, error)
	UserHistory(ctx context.Context, creds apiclient.Credentials) ([]models.HistoryEntry, error)
	AdminStats(ctx context.Context, creds apiclient.Credentials) (*models.AdminStats, error)
	AdminDisputes(ctx context.Context, creds apiclient.Credentials) ([]models.Dispute, error)
	AdminUsers(ctx context.Context, creds apiclient.Credentials) ([]models.UserRecord, error)
	Retrain(ctx context.Context, creds apiclient.Credentials) (string, error)
	Feedback(ctx context.Context, creds apiclient.Credentials, logID string, correction models.Label) (string, error)
	LiveNews(ctx context.Context, creds apiclient.Credentials) ([]models.LiveArticle, error)
}

var _ Backend = (*apiclient.Client)(nil)

// Notifier tells administrators about events that need their attention.
type Notifier interface {
	DisputeFiled(ctx context.Context, username, logID string, claim models.Label) error
	RetrainTriggered(ctx context.Context, username string) error
}

type NopNotifier struct{}

func (NopNotifier) DisputeFiled(context.Context, string, string, models.Label) error { return nil }
func (NopNotifier) RetrainTriggered(context.Context, string) error                 { return nil }
