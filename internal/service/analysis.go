package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

type AnalysisService interface {
	Analyze(ctx context.Context, creds apiclient.Credentials, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analysisService struct {
	backend    Backend
	minLatency time.Duration
	logger     *zap.Logger
}

func NewAnalysisService(backend Backend, minLatency time.Duration, logger *zap.Logger) AnalysisService {
	if minLatency < 0 {
		minLatency = 0
	}
	return &analysisService{backend: backend, minLatency: minLatency, logger: logger}
}

// Analyze sends the request and returns once both the backend call and the
// minimum-latency timer have completed. A transport failure returns at once.
func (s *analysisService) Analyze(ctx context.Context, creds apiclient.Credentials, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	floor := time.NewTimer(s.minLatency)
	defer floor.Stop()

	type outcome struct {
		result *models.AnalysisResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := s.dispatch(ctx, creds, req)
		done <- outcome{result: res, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if errors.Is(out.err, apiclient.ErrUnreachable) {
		return nil, out.err
	}

	select {
	case <-floor.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if out.err != nil {
		s.logger.Warn("Analysis failed", zap.String("kind", string(req.Kind)), zap.Error(out.err))
		return nil, out.err
	}
	return out.result, nil
}

func (s *analysisService) dispatch(ctx context.Context, creds apiclient.Credentials, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	switch req.Kind {
	case models.KindText:
		v, err := s.backend.Predict(ctx, creds, req.Value)
		if err != nil {
			return nil, err
		}
		return &models.AnalysisResult{Verdict: v}, nil
	case models.KindQuery:
		r, err := s.backend.PredictFromQuery(ctx, creds, req.Value)
		if err != nil {
			return nil, err
		}
		return &models.AnalysisResult{Report: r}, nil
	case models.KindURL:
		v, err := s.backend.PredictFromURL(ctx, creds, req.Value)
		if err != nil {
			return nil, err
		}
		return &models.AnalysisResult{Verdict: v}, nil
	}
	return nil, fmt.Errorf("unsupported analysis kind %q", req.Kind)
}
