package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

var (
	ErrMissingLogID = errors.New("prediction has no log id")
	ErrInvalidLabel = errors.New("correction must be REAL or FAKE")
)

// FeedbackOutcome reports what happened to a piece of feedback.
type FeedbackOutcome struct {
	Sent    bool
	Skipped bool
	Message string
}

type FeedbackService interface {
	SubmitAgreement(logID string) FeedbackOutcome
	SubmitDisagreement(ctx context.Context, creds apiclient.Credentials, username, logID, label string) (FeedbackOutcome, error)
}

type feedbackService struct {
	backend  Backend
	notifier Notifier
	logger   *zap.Logger
}

func NewFeedbackService(backend Backend, notifier Notifier, logger *zap.Logger) FeedbackService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &feedbackService{backend: backend, notifier: notifier, logger: logger}
}

// SubmitAgreement is acknowledged locally; the backend is not told.
func (s *feedbackService) SubmitAgreement(logID string) FeedbackOutcome {
	s.logger.Debug("Prediction confirmed by user", zap.String("log_id", logID))
	return FeedbackOutcome{}
}

// SubmitDisagreement files a correction. An empty label means the user backed
// out and nothing is sent.
func (s *feedbackService) SubmitDisagreement(ctx context.Context, creds apiclient.Credentials, username, logID, label string) (FeedbackOutcome, error) {
	if strings.TrimSpace(label) == "" {
		return FeedbackOutcome{Skipped: true}, nil
	}
	correction, ok := models.ParseLabel(label)
	if !ok {
		return FeedbackOutcome{}, ErrInvalidLabel
	}
	if logID == "" {
		return FeedbackOutcome{}, ErrMissingLogID
	}

	msg, err := s.backend.Feedback(ctx, creds, logID, correction)
	if err != nil {
		return FeedbackOutcome{}, err
	}
	s.logger.Info("Dispute filed", zap.String("log_id", logID), zap.String("claim", string(correction)))

	if err := s.notifier.DisputeFiled(ctx, username, logID, correction); err != nil {
		s.logger.Warn("Failed to notify admins of dispute", zap.String("log_id", logID), zap.Error(err))
	}
	return FeedbackOutcome{Sent: true, Message: msg}, nil
}
